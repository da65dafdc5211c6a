package entity

import (
	"fmt"
	"time"
)

// Timestamp keeps creation times at minute precision, matching the
// format used in the persisted JSON collections.
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02 15:04"

func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Minute)}
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	// Hand-edited collection files may carry null.
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid timestamp %q", string(b))
	}
	s := string(b[1 : len(b)-1])
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timestampLayout) + `"`), nil
}
