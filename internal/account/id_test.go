package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		str  string
		out  string
	}{
		{"string id", `"mybot:abc"`, "mybot:abc", `"mybot:abc"`},
		{"numeric id", `10007`, "10007", `10007`},
		{"large numeric id", `3889000123456789`, "3889000123456789", `3889000123456789`},
		{"numeric-looking string stays a string", `"10007"`, "10007", `"10007"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.str, id.String())

			data, err := json.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(data))
		})
	}
}

func TestID_UnmarshalInvalid(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestID_Equal(t *testing.T) {
	// String and numeric forms of the same value compare equal; the
	// store's uniqueness key is the stringified id.
	assert.True(t, NewID("42").Equal(NewNumericID(42)))
	assert.False(t, NewID("42").Equal(NewID("43")))
	assert.True(t, NewID("").IsZero())
	assert.False(t, NewNumericID(0).IsZero())
}
