// Package account defines the persisted account record and the store that
// maintains OlivOS's account.json collection.
package account

// Server holds an account's connection parameters, nested under "server"
// in the persisted document.
type Server struct {
	Auto        bool   `json:"auto"`
	Type        string `json:"type"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	AccessToken string `json:"access_token"`
	URL         string `json:"url"`
}

// DefaultServer returns the connection block OlivOS assumes when the
// operator supplies nothing.
func DefaultServer() Server {
	return Server{
		Auto: true,
		Type: "post",
		Host: "127.0.0.1",
		Port: 57000,
	}
}

// Account is one configured bot account. Field names and nesting mirror
// the account.json document exactly and must round-trip.
type Account struct {
	ID       ID                `json:"id"`
	Password string            `json:"password"`
	SDK      string            `json:"sdk_type"`
	Platform string            `json:"platform_type"`
	Model    string            `json:"model_type"`
	Extends  map[string]string `json:"extends"`
	Debug    bool              `json:"debug"`
	Server   Server            `json:"server"`
}

// Fields returns the account as a plain nested mapping keyed by the
// persisted field names. The validator walks dotted field paths over this
// shape rather than over the struct itself.
func (a *Account) Fields() map[string]any {
	extends := make(map[string]any, len(a.Extends))
	for k, v := range a.Extends {
		extends[k] = v
	}
	return map[string]any{
		"id":            a.ID.String(),
		"password":      a.Password,
		"sdk_type":      a.SDK,
		"platform_type": a.Platform,
		"model_type":    a.Model,
		"debug":         a.Debug,
		"extends":       extends,
		"server": map[string]any{
			"auto":         a.Server.Auto,
			"type":         a.Server.Type,
			"host":         a.Server.Host,
			"port":         a.Server.Port,
			"access_token": a.Server.AccessToken,
			"url":          a.Server.URL,
		},
	}
}
