package entity

// Order заказ; CustomerID и ExecutorID ссылаются на users.id и могут быть
// пустыми, если пользователь был удален.
type Order struct {
	ID          int    `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Встретить тетю на вокзале"`
	Description string `json:"description" db:"description" example:"Встретить тетю на вокзале с табличкой"`
	StartDate   Date   `json:"start_date" db:"start_date" swaggertype:"string" example:"02/08/2013"`
	EndDate     Date   `json:"end_date" db:"end_date" swaggertype:"string" example:"03/08/2055"`
	Address     string `json:"address" db:"address" example:"4759 William Haven Apt. 194"`
	Price       int    `json:"price" db:"price" example:"5512"`
	CustomerID  *int   `json:"customer_id" db:"customer_id" example:"3"`
	ExecutorID  *int   `json:"executor_id" db:"executor_id" example:"6"`
}

var orderSchema = schema[Order]{
	{name: "id", get: func(o *Order) any { return o.ID }},
	{name: "name", get: func(o *Order) any { return o.Name }, set: func(o *Order, v any) (err error) {
		o.Name, err = toText(v)
		return
	}},
	{name: "description", get: func(o *Order) any { return o.Description }, set: func(o *Order, v any) (err error) {
		o.Description, err = toText(v)
		return
	}},
	{name: "start_date", get: func(o *Order) any { return o.StartDate }, set: func(o *Order, v any) (err error) {
		o.StartDate, err = toDate(v)
		return
	}},
	{name: "end_date", get: func(o *Order) any { return o.EndDate }, set: func(o *Order, v any) (err error) {
		o.EndDate, err = toDate(v)
		return
	}},
	{name: "address", get: func(o *Order) any { return o.Address }, set: func(o *Order, v any) (err error) {
		o.Address, err = toText(v)
		return
	}},
	{name: "price", get: func(o *Order) any { return o.Price }, set: func(o *Order, v any) (err error) {
		o.Price, err = toInt(v)
		return
	}},
	{name: "customer_id", get: func(o *Order) any { return refValue(o.CustomerID) }, set: func(o *Order, v any) (err error) {
		o.CustomerID, err = toRef(v)
		return
	}},
	{name: "executor_id", get: func(o *Order) any { return refValue(o.ExecutorID) }, set: func(o *Order, v any) (err error) {
		o.ExecutorID, err = toRef(v)
		return
	}},
}

// NewOrder создает заказ из плоской map; даты уже должны быть приведены
// через CoerceDates.
func NewOrder(data map[string]any) (*Order, error) {
	o := &Order{}
	if err := o.Update(data); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Table() string     { return "orders" }
func (o *Order) Columns() []string { return orderSchema.columns() }
func (o *Order) GetID() int        { return o.ID }
func (o *Order) SetID(id int)      { o.ID = id }

func (o *Order) Update(partial map[string]any) error {
	return orderSchema.apply(o, partial)
}

func (o *Order) FlatMap() FlatMap {
	return orderSchema.flatMap(o)
}

// OrderDetail проекция заказа с фамилиями заказчика и исполнителя
type OrderDetail struct {
	ID           int    `json:"id" db:"id" example:"1"`
	Description  string `json:"description" db:"description" example:"Встретить тетю на вокзале с табличкой"`
	CustomerName string `json:"customer_name" db:"customer_name" example:"Smith"`
	ExecutorName string `json:"executor_name" db:"executor_name" example:"Jones"`
}
