package entity

import "fmt"

// Kind имя коллекции, совпадает с таблицей и путем в API
type Kind string

const (
	KindUser  Kind = "users"
	KindOrder Kind = "orders"
	KindOffer Kind = "offers"
)

// Kinds порядок важен для загрузки: заказы ссылаются на пользователей,
// отклики на заказы.
var Kinds = []Kind{KindUser, KindOrder, KindOffer}

// New создает сущность нужного типа из плоской map
func (k Kind) New(data map[string]any) (Entity, error) {
	var e Entity
	switch k {
	case KindUser:
		e = &User{}
	case KindOrder:
		e = &Order{}
	case KindOffer:
		e = &Offer{}
	default:
		return nil, fmt.Errorf("unknown entity kind %q", string(k))
	}

	if err := e.Update(data); err != nil {
		return nil, err
	}
	return e, nil
}
