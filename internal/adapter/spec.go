// Package adapter defines the catalog of chat-platform adapter
// specifications supported by OlivOS and the registry used to resolve
// which specification applies to an account record.
//
// The catalog is compiled-in data: adding a platform is a data change in
// catalog.go, not a new code path.
package adapter

// ServerType is how an adapter connects to its protocol endpoint.
type ServerType string

const (
	ServerPost      ServerType = "post"
	ServerWebsocket ServerType = "websocket"
)

// ExtendsOption describes one free-form platform-specific field that an
// adapter accepts in an account's extends map.
type ExtendsOption struct {
	Type        string
	Description string
}

// Spec is one adapter profile. Platform, SDK and Model together form the
// resolution key; no two specs in a registry may share the same triple.
type Spec struct {
	// Key is the unique catalog identifier (e.g. "onebotV11").
	Key string

	// Display metadata, UI-facing only.
	Name        string
	Description string
	HelpText    string

	// Resolution key.
	Platform string
	SDK      string
	Model    string

	// ServerAuto reports whether connection parameters are negotiated
	// automatically instead of being supplied by the operator.
	ServerAuto bool
	ServerType ServerType

	// RequiredFields and OptionalFields are ordered dotted field paths
	// (e.g. "server.access_token"). A path present in both sets is
	// required-but-allowed-blank: a blank value downgrades from error
	// to warning.
	RequiredFields []string
	OptionalFields []string

	// ModelOptions maps model-variant identifiers to human labels. When
	// non-empty, a caller choosing this adapter must pick one variant.
	ModelOptions map[string]string

	// ExtendsOptions describes the platform-specific extension fields
	// not covered by the fixed account schema.
	ExtendsOptions map[string]ExtendsOption
}

// ResolutionKey returns the (platform, sdk, model) triple as a single
// comparable value.
func (s *Spec) ResolutionKey() [3]string {
	return [3]string{s.Platform, s.SDK, s.Model}
}

// IsOptional reports whether path is listed in the spec's optional set.
func (s *Spec) IsOptional(path string) bool {
	for _, p := range s.OptionalFields {
		if p == path {
			return true
		}
	}
	return false
}
