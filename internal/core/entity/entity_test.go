package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestFlatMap_Keys(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		want   []string
	}{
		{
			name:   "user",
			entity: &User{},
			want:   []string{"id", "first_name", "last_name", "age", "email", "role", "phone"},
		},
		{
			name:   "order",
			entity: &Order{},
			want:   []string{"id", "name", "description", "start_date", "end_date", "address", "price", "customer_id", "executor_id"},
		},
		{
			name:   "offer",
			entity: &Offer{},
			want:   []string{"id", "order_id", "executor_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entity.FlatMap().Keys())
			assert.Equal(t, tt.want, tt.entity.Columns())
		})
	}
}

func TestFlatMap_MarshalJSON(t *testing.T) {
	o := &Order{
		ID:         7,
		Name:       "Выгулять собаку",
		StartDate:  Date{Year: 2022, Month: time.November, Day: 1},
		Price:      3000,
		CustomerID: intPtr(3),
	}

	data, err := json.Marshal(o.FlatMap())
	require.NoError(t, err)

	expected := `{"id":7,"name":"Выгулять собаку","description":"","start_date":"11/01/2022","end_date":null,` +
		`"address":"","price":3000,"customer_id":3,"executor_id":null}`
	assert.Equal(t, expected, string(data))
}

func TestFlatMap_WithoutAndMap(t *testing.T) {
	u := &User{ID: 1, FirstName: "Jake", LastName: "Smith"}

	m := u.FlatMap().Without("id", "age")
	assert.Equal(t, []string{"first_name", "last_name", "email", "role", "phone"}, m.Keys())

	_, ok := m.Get("id")
	assert.False(t, ok)

	v, ok := m.Get("last_name")
	assert.True(t, ok)
	assert.Equal(t, "Smith", v)

	assert.Equal(t, "Jake", m.Map()["first_name"])
}

func TestUser_Update(t *testing.T) {
	u, err := NewUser(map[string]any{
		"first_name": "Hudson",
		"last_name":  "Pierce",
		"age":        json.Number("34"),
		"email":      "elliot16@mymail.com",
		"role":       "customer",
		"phone":      "6197021684",
	})
	require.NoError(t, err)

	require.NoError(t, u.Update(map[string]any{"age": 35, "phone": nil}))

	assert.Equal(t, 35, u.Age)
	assert.Equal(t, "", u.Phone)
	assert.Equal(t, "Pierce", u.LastName)
	assert.Equal(t, "customer", u.Role)
}

func TestUpdate_EmptyPartialIsNoop(t *testing.T) {
	o := &Offer{ID: 4, OrderID: intPtr(1), ExecutorID: intPtr(2)}
	before := o.FlatMap()

	require.NoError(t, o.Update(map[string]any{}))
	assert.Equal(t, before, o.FlatMap())
}

func TestUpdate_FlatMapRoundTrip(t *testing.T) {
	src := &Order{
		ID:          2,
		Name:        "Повесить полку",
		Description: "Повесить полку в гостиной",
		StartDate:   Date{Year: 2021, Month: time.June, Day: 21},
		EndDate:     Date{Year: 2021, Month: time.June, Day: 23},
		Address:     "676 Crawford Park",
		Price:       1200,
		CustomerID:  intPtr(1),
		ExecutorID:  intPtr(2),
	}

	dst := &Order{ID: 2}
	require.NoError(t, dst.Update(src.FlatMap().Without("id").Map()))
	assert.Equal(t, src, dst)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		partial map[string]any
		wantErr error
	}{
		{name: "unknown field", partial: map[string]any{"nickname": "x"}, wantErr: ErrUnknownField},
		{name: "id is read-only", partial: map[string]any{"id": 10}, wantErr: ErrReadOnlyField},
		{name: "string into int", partial: map[string]any{"age": "old"}, wantErr: ErrInvalidFieldValue},
		{name: "fractional int", partial: map[string]any{"age": 3.5}, wantErr: ErrInvalidFieldValue},
		{name: "int into string", partial: map[string]any{"email": 12}, wantErr: ErrInvalidFieldValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{ID: 1, FirstName: "Jake", Age: 41}
			err := u.Update(tt.partial)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, &User{ID: 1, FirstName: "Jake", Age: 41}, u)
		})
	}
}

func TestUpdate_Atomic(t *testing.T) {
	u := &User{ID: 1, FirstName: "Jake", LastName: "Smith"}

	err := u.Update(map[string]any{"first_name": "John", "zzz": 1})
	require.ErrorIs(t, err, ErrUnknownField)

	assert.Equal(t, "Jake", u.FirstName)
}

func TestOrder_UpdateDatesAndRefs(t *testing.T) {
	o := &Order{ID: 1, CustomerID: intPtr(3), StartDate: Date{Year: 2013, Month: time.February, Day: 8}}

	require.NoError(t, o.Update(map[string]any{
		"customer_id": nil,
		"executor_id": json.Number("4"),
		"start_date":  nil,
		"end_date":    Date{Year: 2055, Month: time.March, Day: 8},
	}))

	assert.Nil(t, o.CustomerID)
	require.NotNil(t, o.ExecutorID)
	assert.Equal(t, 4, *o.ExecutorID)
	assert.True(t, o.StartDate.IsZero())
	assert.Equal(t, "03/08/2055", o.EndDate.String())

	// строку даты сущность не разбирает, это делает CoerceDates
	err := o.Update(map[string]any{"start_date": "02/08/2013"})
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestKind_New(t *testing.T) {
	e, err := KindOffer.New(map[string]any{"order_id": 1, "executor_id": 2})
	require.NoError(t, err)

	offer, ok := e.(*Offer)
	require.True(t, ok)
	assert.Equal(t, "offers", offer.Table())
	assert.Equal(t, 1, *offer.OrderID)

	e, err = KindUser.New(map[string]any{"last_name": "Jones"})
	require.NoError(t, err)
	assert.Equal(t, "users", e.Table())

	_, err = KindOrder.New(map[string]any{"color": "red"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Kind("invoices").New(nil)
	assert.Error(t, err)
}
