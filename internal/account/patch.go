package account

import "strconv"

// Field names a patchable account attribute. The set of fields is closed:
// Patch.apply switches over these constants, so a patch can never reach
// outside the account schema.
type Field string

const (
	FieldPassword          Field = "password"
	FieldPlatform          Field = "platform_type"
	FieldSDK               Field = "sdk_type"
	FieldModel             Field = "model_type"
	FieldDebug             Field = "debug"
	FieldServerAuto        Field = "server.auto"
	FieldServerType        Field = "server.type"
	FieldServerHost        Field = "server.host"
	FieldServerPort        Field = "server.port"
	FieldServerAccessToken Field = "server.access_token"
	FieldServerURL         Field = "server.url"
)

var knownFields = map[Field]struct{}{
	FieldPassword:          {},
	FieldPlatform:          {},
	FieldSDK:               {},
	FieldModel:             {},
	FieldDebug:             {},
	FieldServerAuto:        {},
	FieldServerType:        {},
	FieldServerHost:        {},
	FieldServerPort:        {},
	FieldServerAccessToken: {},
	FieldServerURL:         {},
}

// ParseField maps a persisted field name to its Field constant.
func ParseField(name string) (Field, bool) {
	f := Field(name)
	_, ok := knownFields[f]
	return f, ok
}

// Patch is a permissive partial update: keys that do not name a known
// field, or whose values cannot be coerced to the field's type, are
// silently skipped. This mirrors the historical patch-by-key-name
// semantics of the account store.
type Patch map[Field]any

func (p Patch) apply(acc *Account) {
	for field, value := range p {
		switch field {
		case FieldPassword:
			if v, ok := asString(value); ok {
				acc.Password = v
			}
		case FieldPlatform:
			if v, ok := asString(value); ok {
				acc.Platform = v
			}
		case FieldSDK:
			if v, ok := asString(value); ok {
				acc.SDK = v
			}
		case FieldModel:
			if v, ok := asString(value); ok {
				acc.Model = v
			}
		case FieldDebug:
			if v, ok := asBool(value); ok {
				acc.Debug = v
			}
		case FieldServerAuto:
			if v, ok := asBool(value); ok {
				acc.Server.Auto = v
			}
		case FieldServerType:
			if v, ok := asString(value); ok {
				acc.Server.Type = v
			}
		case FieldServerHost:
			if v, ok := asString(value); ok {
				acc.Server.Host = v
			}
		case FieldServerPort:
			if v, ok := asInt(value); ok {
				acc.Server.Port = v
			}
		case FieldServerAccessToken:
			if v, ok := asString(value); ok {
				acc.Server.AccessToken = v
			}
		case FieldServerURL:
			if v, ok := asString(value); ok {
				acc.Server.URL = v
			}
		}
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	}
	return false, false
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		return n, err == nil
	}
	return 0, false
}
