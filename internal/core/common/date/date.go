package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const Layout = "2006-01-02" // yyyy-MM-dd

// Date is a calendar date carried as UTC midnight.
type Date struct {
	time.Time
}

func New(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %w", err)
	}
	return Date{Time: t}, nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// UnmarshalJSON accepts the MarshalJSON form. Without it the embedded
// time.Time would expect RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
