package entity

// Offer отклик исполнителя на заказ
type Offer struct {
	ID         int  `json:"id" db:"id" example:"1"`
	OrderID    *int `json:"order_id" db:"order_id" example:"36"`
	ExecutorID *int `json:"executor_id" db:"executor_id" example:"10"`
}

var offerSchema = schema[Offer]{
	{name: "id", get: func(o *Offer) any { return o.ID }},
	{name: "order_id", get: func(o *Offer) any { return refValue(o.OrderID) }, set: func(o *Offer, v any) (err error) {
		o.OrderID, err = toRef(v)
		return
	}},
	{name: "executor_id", get: func(o *Offer) any { return refValue(o.ExecutorID) }, set: func(o *Offer, v any) (err error) {
		o.ExecutorID, err = toRef(v)
		return
	}},
}

func NewOffer(data map[string]any) (*Offer, error) {
	o := &Offer{}
	if err := o.Update(data); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Offer) Table() string     { return "offers" }
func (o *Offer) Columns() []string { return offerSchema.columns() }
func (o *Offer) GetID() int        { return o.ID }
func (o *Offer) SetID(id int)      { o.ID = id }

func (o *Offer) Update(partial map[string]any) error {
	return offerSchema.apply(o, partial)
}

func (o *Offer) FlatMap() FlatMap {
	return offerSchema.flatMap(o)
}
