package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout формат дат во входных данных и в ответах API
const DateLayout = "01/02/2006"

// ErrMalformedDate ошибка разбора даты в формате MM/DD/YYYY
var ErrMalformedDate = errors.New("malformed date")

var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// Date календарная дата без времени суток
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate разбирает строку вида MM/DD/YYYY
func ParseDate(s string) (Date, error) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q does not match MM/DD/YYYY", ErrMalformedDate, s)
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if year < 1 || month < 1 || month > 12 || day < 1 {
		return Date{}, fmt.Errorf("%w: %q is out of calendar range", ErrMalformedDate, s)
	}

	// time.Date нормализует 02/30 в 03/02, поэтому сверяем результат
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return Date{}, fmt.Errorf("%w: %q is out of calendar range", ErrMalformedDate, s)
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// DateOf отбрасывает время суток
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedDate, data)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	t, err := time.Parse("2006-01-02", s[:min(len(s), 10)])
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}

// Value реализует driver.Valuer, нулевая дата хранится как NULL
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

// CoerceDates возвращает копию data, в которой значения всех ключей,
// содержащих подстроку "date", преобразованы из MM/DD/YYYY в Date.
func CoerceDates(data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(data))
	for key, value := range data {
		if !strings.Contains(key, "date") {
			out[key] = value
			continue
		}

		switch v := value.(type) {
		case nil:
			out[key] = nil
		case Date:
			out[key] = v
		case string:
			d, err := ParseDate(v)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			out[key] = d
		default:
			return nil, fmt.Errorf("field %q: %w: expected MM/DD/YYYY string, got %T", key, ErrMalformedDate, value)
		}
	}
	return out, nil
}
