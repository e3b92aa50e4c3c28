package account

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an account identity that may be persisted either as a JSON string
// (bot tokens, room names) or as a JSON number (numeric QQ ids). It keeps
// track of which form it was loaded in so the document round-trips exactly.
type ID struct {
	value   string
	numeric bool
}

// NewID returns a string-form ID.
func NewID(s string) ID {
	return ID{value: s}
}

// NewNumericID returns a number-form ID.
func NewNumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// String returns the textual form, which is what uniqueness and lookup
// comparisons use.
func (id ID) String() string { return id.value }

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool { return id.value == "" }

// Equal compares two IDs by their stringified values, so "42" matches a
// numeric 42.
func (id ID) Equal(other ID) bool { return id.value == other.value }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty id value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}
