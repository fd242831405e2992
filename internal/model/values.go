package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var jsonNull = []byte("null")

// textValue reads a JSON scalar for a text column. Numbers keep their
// literal form and booleans become "true" or "false".
func textValue(field string, raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var text string
	switch t := v.(type) {
	case string:
		text = t
	case json.Number:
		text = t.String()
	case bool:
		text = strconv.FormatBool(t)
	default:
		return nil, fmt.Errorf("%s must be a string, number or boolean", field)
	}
	return &text, nil
}

// Salary is a nullable salary value. Clients may send it as a JSON number
// or a string; it is kept as text.
type Salary struct {
	Text  string
	Valid bool
}

// NewSalary returns a valid Salary holding s
func NewSalary(s string) Salary {
	return Salary{Text: s, Valid: true}
}

// Value implements driver.Valuer
func (s Salary) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return s.Text, nil
}

// Scan implements sql.Scanner
func (s *Salary) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = Salary{}
	case string:
		*s = NewSalary(v)
	case []byte:
		*s = NewSalary(string(v))
	case int64:
		*s = NewSalary(strconv.FormatInt(v, 10))
	case float64:
		*s = NewSalary(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("cannot scan %T into Salary", src)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return jsonNull, nil
	}
	return json.Marshal(s.Text)
}

// UnmarshalJSON accepts null, a string, a number or a boolean
func (s *Salary) UnmarshalJSON(b []byte) error {
	text, err := textValue("job_salary", b)
	if err != nil {
		return err
	}
	*s = Salary{}
	if text != nil {
		*s = NewSalary(*text)
	}
	return nil
}

// DateLayout is the format date_applied is returned in
const DateLayout = "2006-01-02"

// Date is a nullable calendar date. Input text is handed to the store
// untouched; the store decides whether it is a valid date.
type Date struct {
	Text  string
	Valid bool
}

// NewDate returns a valid Date holding s
func NewDate(s string) Date {
	return Date{Text: s, Valid: true}
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Text, nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Format(DateLayout))
	case string:
		*d = NewDate(v)
	case []byte:
		*d = NewDate(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return jsonNull, nil
	}
	return json.Marshal(d.Text)
}

// UnmarshalJSON accepts null or any scalar. PostgreSQL validates the
// text when it is written.
func (d *Date) UnmarshalJSON(b []byte) error {
	text, err := textValue("date_applied", b)
	if err != nil {
		return err
	}
	*d = Date{}
	if text != nil {
		*d = NewDate(*text)
	}
	return nil
}

// Truthy is a flag decoded the way a loosely typed client means it:
// null, false, 0 and "" are false, true and non-zero numbers are true,
// other strings are read as PostgreSQL boolean literals.
type Truthy bool

// UnmarshalJSON implements json.Unmarshaler
func (t *Truthy) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*t = false
	case bool:
		*t = Truthy(v)
	case float64:
		*t = v != 0
	case string:
		parsed, err := parseBoolLiteral(v)
		if err != nil {
			return err
		}
		*t = Truthy(parsed)
	default:
		return fmt.Errorf("cannot use %s as a status flag", string(b))
	}
	return nil
}

func parseBoolLiteral(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "f", "false", "n", "no", "off", "0":
		return false, nil
	case "t", "true", "y", "yes", "on", "1":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean literal %q", s)
}
