package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olivos-dev/olivctl/internal/account"
	"github.com/olivos-dev/olivctl/internal/adapter"
)

// Account validates rec against spec. A nil spec triggers resolution by
// the record's own (platform, sdk, model) triple against the default
// registry; records with an unrecognized triple fall back to basic
// structural validation rather than failing outright.
func Account(rec *account.Account, spec *adapter.Spec) *Result {
	return AccountWith(adapter.Default(), rec, spec)
}

// AccountWith is Account with an explicit registry.
func AccountWith(reg *adapter.Registry, rec *account.Account, spec *adapter.Spec) *Result {
	if spec == nil {
		model := rec.Model
		if model == "" {
			model = "default"
		}
		resolved, err := reg.Resolve(rec.Platform, rec.SDK, model)
		if err != nil {
			if errors.Is(err, adapter.ErrSpecNotFound) {
				return basic(rec)
			}
			r := newResult()
			r.AddError(err.Error())
			return r
		}
		spec = resolved
	}

	result := newResult()
	fields := rec.Fields()

	for _, path := range spec.RequiredFields {
		checkRequiredPath(result, spec, fields, path)
	}

	checkServerShape(result, spec, fields)

	for _, rule := range specialRules[spec.Key] {
		if rule.when(rec) {
			if rule.fatal {
				result.AddError(rule.message)
			} else {
				result.AddWarning(rule.message)
			}
		}
	}

	return result
}

// checkRequiredPath walks one dotted field path over the record's field
// mapping. A missing component is an error. A present-but-blank leaf is an
// error unless the path is also optional, in which case it is soft-required
// and only warned about.
func checkRequiredPath(result *Result, spec *adapter.Spec, fields map[string]any, path string) {
	var value any = fields
	for _, part := range strings.Split(path, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			result.AddError(fmt.Sprintf("missing required field: %s", path))
			return
		}
		value, ok = m[part]
		if !ok {
			result.AddError(fmt.Sprintf("missing required field: %s", path))
			return
		}
	}

	if !isBlank(value) {
		return
	}
	if spec.IsOptional(path) {
		result.AddWarning(fmt.Sprintf("field %s should be provided", path))
		return
	}
	result.AddError(fmt.Sprintf("missing required field: %s", path))
}

// checkServerShape applies the connection-shape rules. When ServerAuto is
// set the adapter negotiates its own connection details and nothing is
// required here.
func checkServerShape(result *Result, spec *adapter.Spec, fields map[string]any) {
	server, ok := fields["server"].(map[string]any)
	if !ok {
		return
	}

	srvType, _ := server["type"].(string)
	if srvType == "" {
		srvType = string(spec.ServerType)
	}
	host, _ := server["host"].(string)
	url, _ := server["url"].(string)

	switch srvType {
	case string(adapter.ServerWebsocket):
		if host == "" && url == "" && !spec.ServerAuto {
			result.AddError("websocket server requires server.host or server.url")
		}
	case string(adapter.ServerPost):
		if spec.ServerAuto {
			return
		}
		if host == "" {
			result.AddError("post server requires server.host")
		}
		if isBlank(server["port"]) {
			result.AddError("post server requires server.port")
		}
	}
}

// basic applies structural server-shape sanity only. With no spec to
// assert strictness, missing connection details are warnings, not errors.
func basic(rec *account.Account) *Result {
	result := newResult()
	server, ok := rec.Fields()["server"].(map[string]any)
	if !ok {
		return result
	}

	srvType, _ := server["type"].(string)
	if srvType == "" {
		result.AddError("missing required field: server.type")
	}

	if auto, ok := server["auto"].(bool); ok && !auto {
		host, _ := server["host"].(string)
		url, _ := server["url"].(string)
		if host == "" && url == "" {
			result.AddWarning("server.host or server.url should be provided when auto is off")
		}
	}
	if srvType == string(adapter.ServerPost) && isBlank(server["port"]) {
		result.AddWarning("server.port should be provided for post servers")
	}

	return result
}

// Extends checks an account's free-form extension fields against the
// adapter's declared extension options.
func Extends(spec *adapter.Spec, extends map[string]string) *Result {
	result := newResult()
	if spec == nil || len(spec.ExtendsOptions) == 0 {
		return result
	}
	for key := range extends {
		if _, ok := spec.ExtendsOptions[key]; !ok {
			result.AddWarning(fmt.Sprintf("unknown extends field: %s", key))
		}
	}
	return result
}

// isBlank reports whether a field value counts as unset: empty strings,
// zero numbers and nil. Booleans are never blank.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}
