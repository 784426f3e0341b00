package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

var (
	// ErrUnknownField поле отсутствует в схеме сущности
	ErrUnknownField = errors.New("unknown field")
	// ErrReadOnlyField поле нельзя менять через API (id назначает БД)
	ErrReadOnlyField = errors.New("read-only field")
	// ErrInvalidFieldValue значение нельзя привести к типу поля
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Entity общий контракт для User, Order и Offer
type Entity interface {
	Table() string
	Columns() []string
	GetID() int
	SetID(id int)
	Update(partial map[string]any) error
	FlatMap() FlatMap
}

// Field пара имя-значение из FlatMap
type Field struct {
	Name  string
	Value any
}

// FlatMap плоское представление сущности с фиксированным порядком ключей
type FlatMap []Field

// Get возвращает значение поля по имени
func (m FlatMap) Get(name string) (any, bool) {
	for _, f := range m {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys имена полей в порядке схемы
func (m FlatMap) Keys() []string {
	keys := make([]string, len(m))
	for i, f := range m {
		keys[i] = f.Name
	}
	return keys
}

// Without копия без перечисленных полей
func (m FlatMap) Without(names ...string) FlatMap {
	out := make(FlatMap, 0, len(m))
outer:
	for _, f := range m {
		for _, n := range names {
			if f.Name == n {
				continue outer
			}
		}
		out = append(out, f)
	}
	return out
}

// Map обычная map, порядок теряется
func (m FlatMap) Map() map[string]any {
	out := make(map[string]any, len(m))
	for _, f := range m {
		out[f.Name] = f.Value
	}
	return out
}

func (m FlatMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// field описывает одну колонку сущности T, set == nil для полей только на чтение
type field[T any] struct {
	name string
	get  func(e *T) any
	set  func(e *T, v any) error
}

type schema[T any] []field[T]

func (s schema[T]) columns() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.name
	}
	return names
}

func (s schema[T]) flatMap(e *T) FlatMap {
	out := make(FlatMap, len(s))
	for i, f := range s {
		out[i] = Field{Name: f.name, Value: f.get(e)}
	}
	return out
}

func (s schema[T]) lookup(name string) (field[T], bool) {
	for _, f := range s {
		if f.name == name {
			return f, true
		}
	}
	return field[T]{}, false
}

// apply применяет partial к копии e и переносит результат только если все
// ключи прошли проверку.
func (s schema[T]) apply(e *T, partial map[string]any) error {
	keys := make([]string, 0, len(partial))
	for k := range partial {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	draft := *e
	for _, key := range keys {
		f, ok := s.lookup(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if f.set == nil {
			return fmt.Errorf("%w: %q", ErrReadOnlyField, key)
		}
		if err := f.set(&draft, partial[key]); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	*e = draft
	return nil
}

func toText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("%w: expected string, got %T", ErrInvalidFieldValue, v)
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case int32:
		return int(t), nil
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFieldValue, t.String())
		}
		return n, nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidFieldValue, t)
		}
		return int(t), nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrInvalidFieldValue, v)
	}
}

// toRef внешний ключ, nil означает отсутствие ссылки
func toRef(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func toDate(v any) (Date, error) {
	switch t := v.(type) {
	case nil:
		return Date{}, nil
	case Date:
		return t, nil
	default:
		return Date{}, fmt.Errorf("%w: expected date, got %T", ErrInvalidFieldValue, v)
	}
}

func refValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
