package adapter

import (
	"fmt"
	"sync"
)

// ErrSpecNotFound is returned when a lookup by key or by resolution triple
// matches no spec in the registry.
var ErrSpecNotFound = fmt.Errorf("adapter spec not found")

// NotFoundError wraps ErrSpecNotFound with the lookup that failed.
type NotFoundError struct {
	Key                  string
	Platform, SDK, Model string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("unknown adapter %q", e.Key)
	}
	return fmt.Sprintf("no adapter matches platform=%q sdk=%q model=%q", e.Platform, e.SDK, e.Model)
}

func (e *NotFoundError) Unwrap() error { return ErrSpecNotFound }

// Group is one presentational bucket of adapter keys.
type Group struct {
	Label string
	Keys  []string
}

// Registry is an immutable catalog of adapter specs, queryable by key and
// by (platform, sdk, model) resolution triple.
type Registry struct {
	specs  []*Spec
	byKey  map[string]*Spec
	byTrip map[[3]string]*Spec
	groups []Group
}

// New builds a registry from specs in the given order. It fails if two
// specs share a key or a (platform, sdk, model) triple; resolution by
// composite key must be unambiguous, so duplicates are rejected at
// construction rather than silently tie-broken.
func New(specs ...*Spec) (*Registry, error) {
	r := &Registry{
		specs:  make([]*Spec, 0, len(specs)),
		byKey:  make(map[string]*Spec, len(specs)),
		byTrip: make(map[[3]string]*Spec, len(specs)),
	}
	for _, s := range specs {
		if s.Key == "" {
			return nil, fmt.Errorf("adapter spec with empty key")
		}
		if _, ok := r.byKey[s.Key]; ok {
			return nil, fmt.Errorf("duplicate adapter key %q", s.Key)
		}
		trip := s.ResolutionKey()
		if prev, ok := r.byTrip[trip]; ok {
			return nil, fmt.Errorf("adapters %q and %q share resolution key platform=%q sdk=%q model=%q",
				prev.Key, s.Key, s.Platform, s.SDK, s.Model)
		}
		r.byKey[s.Key] = s
		r.byTrip[trip] = s
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// Get returns the spec registered under key.
func (r *Registry) Get(key string) (*Spec, error) {
	if s, ok := r.byKey[key]; ok {
		return s, nil
	}
	return nil, &NotFoundError{Key: key}
}

// Resolve returns the spec whose (platform, sdk, model) triple matches.
func (r *Registry) Resolve(platform, sdk, model string) (*Spec, error) {
	if s, ok := r.byTrip[[3]string{platform, sdk, model}]; ok {
		return s, nil
	}
	return nil, &NotFoundError{Platform: platform, SDK: sdk, Model: model}
}

// List returns all specs in catalog-declaration order.
func (r *Registry) List() []*Spec {
	out := make([]*Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Groups returns the presentational grouping of adapter keys. Every key in
// a group is resolvable through Get.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	copy(out, r.groups)
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the compiled-in catalog. The
// catalog is static data, so a duplicate triple is a programming error and
// panics at first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(catalog...)
		if err != nil {
			panic(fmt.Sprintf("adapter catalog: %v", err))
		}
		r.groups = groups
		defaultReg = r
	})
	return defaultReg
}
