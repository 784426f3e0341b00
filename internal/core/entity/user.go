package entity

// User представляет пользователя: заказчика или исполнителя
type User struct {
	ID        int    `json:"id" db:"id" example:"1"`
	FirstName string `json:"first_name" db:"first_name" example:"Hudson"`
	LastName  string `json:"last_name" db:"last_name" example:"Pierce"`
	Age       int    `json:"age" db:"age" example:"34"`
	Email     string `json:"email" db:"email" example:"elliot16@mymail.com"`
	Role      string `json:"role" db:"role" example:"customer"`
	Phone     string `json:"phone" db:"phone" example:"6197021684"`
}

var userSchema = schema[User]{
	{name: "id", get: func(u *User) any { return u.ID }},
	{name: "first_name", get: func(u *User) any { return u.FirstName }, set: func(u *User, v any) (err error) {
		u.FirstName, err = toText(v)
		return
	}},
	{name: "last_name", get: func(u *User) any { return u.LastName }, set: func(u *User, v any) (err error) {
		u.LastName, err = toText(v)
		return
	}},
	{name: "age", get: func(u *User) any { return u.Age }, set: func(u *User, v any) (err error) {
		u.Age, err = toInt(v)
		return
	}},
	{name: "email", get: func(u *User) any { return u.Email }, set: func(u *User, v any) (err error) {
		u.Email, err = toText(v)
		return
	}},
	{name: "role", get: func(u *User) any { return u.Role }, set: func(u *User, v any) (err error) {
		u.Role, err = toText(v)
		return
	}},
	{name: "phone", get: func(u *User) any { return u.Phone }, set: func(u *User, v any) (err error) {
		u.Phone, err = toText(v)
		return
	}},
}

// NewUser создает пользователя из плоской map, неизвестные ключи отклоняются
func NewUser(data map[string]any) (*User, error) {
	u := &User{}
	if err := u.Update(data); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Table() string     { return "users" }
func (u *User) Columns() []string { return userSchema.columns() }
func (u *User) GetID() int        { return u.ID }
func (u *User) SetID(id int)      { u.ID = id }

// Update перезаписывает только переданные поля
func (u *User) Update(partial map[string]any) error {
	return userSchema.apply(u, partial)
}

func (u *User) FlatMap() FlatMap {
	return userSchema.flatMap(u)
}
