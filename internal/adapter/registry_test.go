package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_ResolveRoundTrip verifies that every catalog spec can be
// found again through its own resolution triple.
func TestDefault_ResolveRoundTrip(t *testing.T) {
	reg := Default()
	for _, spec := range reg.List() {
		got, err := reg.Resolve(spec.Platform, spec.SDK, spec.Model)
		require.NoError(t, err, "resolve %s", spec.Key)
		assert.Same(t, spec, got, "resolve %s returned a different spec", spec.Key)
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		specs     []*Spec
		errSubstr string
	}{
		{
			name: "duplicate resolution triple",
			specs: []*Spec{
				{Key: "a", Platform: "qq", SDK: "onebot", Model: "default"},
				{Key: "b", Platform: "qq", SDK: "onebot", Model: "default"},
			},
			errSubstr: "share resolution key",
		},
		{
			name: "duplicate key",
			specs: []*Spec{
				{Key: "a", Platform: "qq", SDK: "onebot", Model: "default"},
				{Key: "a", Platform: "qq", SDK: "onebot", Model: "red"},
			},
			errSubstr: "duplicate adapter key",
		},
		{
			name:      "empty key",
			specs:     []*Spec{{Platform: "qq", SDK: "onebot", Model: "default"}},
			errSubstr: "empty key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.specs...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestNew_DistinctTriples(t *testing.T) {
	// Same platform and sdk but different model is a distinct adapter.
	reg, err := New(
		&Spec{Key: "a", Platform: "qq", SDK: "onebot", Model: "default"},
		&Spec{Key: "b", Platform: "qq", SDK: "onebot", Model: "red"},
	)
	require.NoError(t, err)

	a, err := reg.Resolve("qq", "onebot", "default")
	require.NoError(t, err)
	assert.Equal(t, "a", a.Key)

	b, err := reg.Resolve("qq", "onebot", "red")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Key)
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := Default()

	_, err := reg.Get("nosuch")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nosuch", nf.Key)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := Default()
	_, err := reg.Resolve("qq", "onebot", "nosuch-model")
	assert.ErrorIs(t, err, ErrSpecNotFound)
}

func TestDefault_ListOrder(t *testing.T) {
	reg := Default()
	specs := reg.List()
	require.NotEmpty(t, specs)

	// Enumeration order is catalog-declaration order.
	assert.Equal(t, "onebotV11", specs[0].Key)
	assert.Equal(t, "virtualTerminal", specs[len(specs)-1].Key)
	assert.Len(t, specs, 17)
}

func TestDefault_GroupsCoverCatalog(t *testing.T) {
	reg := Default()

	seen := make(map[string]bool)
	for _, group := range reg.Groups() {
		require.NotEmpty(t, group.Label)
		for _, key := range group.Keys {
			spec, err := reg.Get(key)
			require.NoError(t, err, "group %q references unknown adapter %q", group.Label, key)
			assert.Equal(t, key, spec.Key)
			assert.False(t, seen[key], "adapter %q appears in more than one group", key)
			seen[key] = true
		}
	}
	assert.Len(t, seen, len(reg.List()), "every adapter belongs to exactly one group")
}

func TestFamily(t *testing.T) {
	fam, ok := Family("onebot12")
	require.True(t, ok)
	assert.Equal(t, "onebotV12", fam.SDK)
	assert.Equal(t, "qq", fam.Platform)

	_, ok = Family("nosuch")
	assert.False(t, ok)

	assert.Len(t, Families(), 14)
}

func TestSpec_IsOptional(t *testing.T) {
	reg := Default()

	tg, err := reg.Get("telegram")
	require.NoError(t, err)
	assert.False(t, tg.IsOptional("server.access_token"))

	ob, err := reg.Get("onebotV11")
	require.NoError(t, err)
	assert.True(t, ob.IsOptional("server.access_token"))
	assert.True(t, ob.IsOptional("password"))
	assert.False(t, ob.IsOptional("id"))
}

func TestNotFoundError_Unwrap(t *testing.T) {
	err := error(&NotFoundError{Key: "x"})
	assert.True(t, errors.Is(err, ErrSpecNotFound))
}
