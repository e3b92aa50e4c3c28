package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"password", true},
		{"sdk_type", true},
		{"server.port", true},
		{"server.access_token", true},
		{"id", false},      // identity is not patchable
		{"extends", false}, // extends is managed as a whole, not patched
		{"nosuch", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ParseField(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, Field(tt.name), f)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	acc := testAccount("42", "qq", "onebot", "default")

	Patch{
		FieldPassword:          "pw",
		FieldModel:             "red",
		FieldServerHost:        "10.0.0.1",
		FieldServerPort:        "5700", // string form coerces
		FieldServerAuto:        false,
		FieldServerAccessToken: "tok",
		FieldDebug:             "true", // string form coerces
	}.apply(acc)

	assert.Equal(t, "pw", acc.Password)
	assert.Equal(t, "red", acc.Model)
	assert.Equal(t, "10.0.0.1", acc.Server.Host)
	assert.Equal(t, 5700, acc.Server.Port)
	assert.False(t, acc.Server.Auto)
	assert.Equal(t, "tok", acc.Server.AccessToken)
	assert.True(t, acc.Debug)
}

func TestPatch_SkipsUncoercibleValues(t *testing.T) {
	acc := testAccount("42", "qq", "onebot", "default")
	acc.Server.Port = 5700

	Patch{
		FieldServerPort: "not-a-number",
		FieldPassword:   12345,
	}.apply(acc)

	assert.Equal(t, 5700, acc.Server.Port, "uncoercible value leaves the field alone")
	assert.Empty(t, acc.Password)
}
