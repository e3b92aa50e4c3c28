package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivos-dev/olivctl/internal/account"
	"github.com/olivos-dev/olivctl/internal/adapter"
)

func mustSpec(t *testing.T, key string) *adapter.Spec {
	t.Helper()
	spec, err := adapter.Default().Get(key)
	require.NoError(t, err)
	return spec
}

func baseAccount(platform, sdk, model string) *account.Account {
	return &account.Account{
		ID:       account.NewID("10001"),
		Platform: platform,
		SDK:      sdk,
		Model:    model,
		Extends:  map[string]string{},
		Server:   account.Server{Auto: true, Type: "post"},
	}
}

func hasMention(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestAccount_MissingRequiredField(t *testing.T) {
	spec := mustSpec(t, "dingtalk") // requires only "id"

	rec := baseAccount("dingtalk", "dingtalk_link", "default")
	rec.ID = account.ID{}

	result := Account(rec, spec)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "id"), "error should mention the missing field: %v", result.Errors)
}

func TestAccount_PlainOptionalFieldsStaySilent(t *testing.T) {
	// onebotV11 lists password and server.access_token as optional only:
	// leaving them blank produces neither error nor warning.
	spec := mustSpec(t, "onebotV11")

	rec := baseAccount("qq", "onebot", "default")
	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestAccount_SoftRequiredField(t *testing.T) {
	// A path in both sets is soft-required: blank downgrades to a
	// warning, but the path being entirely absent is still an error.
	spec := &adapter.Spec{
		Key:            "probe",
		Platform:       "p",
		SDK:            "s",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     adapter.ServerWebsocket,
		RequiredFields: []string{"id", "extends.group"},
		OptionalFields: []string{"extends.group"},
	}

	rec := baseAccount("p", "s", "default")
	rec.Extends["group"] = ""
	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.True(t, hasMention(result.Warnings, "extends.group"))

	delete(rec.Extends, "group")
	result = Account(rec, spec)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "extends.group"))
}

func TestAccount_RequiredBlankVsSoftRequired(t *testing.T) {
	spec := &adapter.Spec{
		Key:            "probe",
		Platform:       "p",
		SDK:            "s",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     adapter.ServerPost,
		RequiredFields: []string{"password", "server.access_token"},
		OptionalFields: []string{"server.access_token"},
	}

	rec := baseAccount("p", "s", "default")
	result := Account(rec, spec)

	// Hard-required blank field is an error; soft-required blank is a warning.
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "password"))
	assert.True(t, hasMention(result.Warnings, "server.access_token"))
	assert.False(t, hasMention(result.Errors, "server.access_token"))
}

func TestAccount_MissingExtendsPath(t *testing.T) {
	spec := &adapter.Spec{
		Key:            "probe",
		Platform:       "p",
		SDK:            "s",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     adapter.ServerWebsocket,
		RequiredFields: []string{"id", "extends.http-path"},
	}

	rec := baseAccount("p", "s", "default")
	result := Account(rec, spec)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "extends.http-path"))

	rec.Extends["http-path"] = "http://127.0.0.1:3000"
	result = Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestAccount_WebsocketServerShape(t *testing.T) {
	tests := []struct {
		name       string
		serverAuto bool
		host, url  string
		wantValid  bool
	}{
		{"manual with neither host nor url", false, "", "", false},
		{"manual with host", false, "127.0.0.1", "", true},
		{"manual with url", false, "", "ws://example/ws", true},
		{"auto with neither", true, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &adapter.Spec{
				Key:        "probe",
				Platform:   "p",
				SDK:        "s",
				Model:      "default",
				ServerAuto: tt.serverAuto,
				ServerType: adapter.ServerWebsocket,
			}
			rec := baseAccount("p", "s", "default")
			rec.Server = account.Server{Auto: tt.serverAuto, Type: "websocket", Host: tt.host, URL: tt.url}

			result := Account(rec, spec)
			assert.Equal(t, tt.wantValid, result.Valid, "errors: %v", result.Errors)
		})
	}
}

func TestAccount_PostServerShape(t *testing.T) {
	spec := &adapter.Spec{
		Key:        "probe",
		Platform:   "p",
		SDK:        "s",
		Model:      "default",
		ServerAuto: false,
		ServerType: adapter.ServerPost,
	}

	rec := baseAccount("p", "s", "default")
	rec.Server = account.Server{Auto: false, Type: "post"}

	result := Account(rec, spec)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "server.host"))
	assert.True(t, hasMention(result.Errors, "server.port"))

	rec.Server.Host = "127.0.0.1"
	rec.Server.Port = 5700
	result = Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)

	// Auto mode skips the post checks entirely.
	spec.ServerAuto = true
	rec.Server = account.Server{Auto: true, Type: "post"}
	result = Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestAccount_TelegramTokenWarning(t *testing.T) {
	spec := &adapter.Spec{
		Key:            "telegram",
		Platform:       "telegram",
		SDK:            "telegram_poll",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     adapter.ServerPost,
		RequiredFields: []string{"id", "server.access_token"},
	}

	rec := baseAccount("telegram", "telegram_poll", "default")
	rec.ID = account.NewID("mybot")
	rec.Server.AccessToken = "abc"

	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "id:token")

	rec.ID = account.NewID("123456:AAH4xyz")
	result = Account(rec, spec)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestAccount_QQGuildV2IntentsWarning(t *testing.T) {
	spec := mustSpec(t, "qqGuildV2")

	rec := baseAccount("qqGuild", "qqGuildv2_link", "public_intents")
	rec.Server.AccessToken = "tok"
	rec.Server.Type = "websocket"

	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.True(t, hasMention(result.Warnings, "intents"))

	rec.Extends["intents"] = "33554432"
	result = Account(rec, spec)
	assert.False(t, hasMention(result.Warnings, "intents"))
}

func TestAccount_VillaSandboxPortError(t *testing.T) {
	spec := mustSpec(t, "mhyVila")

	rec := baseAccount("mhyVila", "mhyVila_link", "sandbox")
	rec.Password = "pw"
	rec.Server.AccessToken = "tok"
	rec.Server.Type = "websocket"

	result := Account(rec, spec)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "server.port"), "errors: %v", result.Errors)

	rec.Server.Port = 1201
	result = Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestAccount_BiliLiveGuestWarning(t *testing.T) {
	spec := mustSpec(t, "biliLive")

	rec := baseAccount("biliLive", "biliLive_link", "default")
	rec.Server.AccessToken = "tok"
	rec.Server.Type = "websocket"

	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.True(t, hasMention(result.Warnings, "cannot send"))

	rec.Model = "login"
	// login is not a registered (platform, sdk, model) variant for the
	// guest rule; validating against the same spec drops the warning.
	result = Account(rec, spec)
	assert.False(t, hasMention(result.Warnings, "cannot send"))
}

func TestAccount_NilSpecResolves(t *testing.T) {
	// The record's own triple resolves to the telegram spec, so the
	// telegram special rule fires without naming the adapter.
	rec := baseAccount("telegram", "telegram_poll", "default")
	rec.ID = account.NewID("mybot")
	rec.Server.AccessToken = "abc"

	result := Account(rec, nil)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.True(t, hasMention(result.Warnings, "id:token"))
}

func TestAccount_NilSpecUnknownTripleFallsBack(t *testing.T) {
	rec := baseAccount("nosuch", "nosuch_link", "default")
	rec.Server = account.Server{Auto: false, Type: "post"}

	result := Account(rec, nil)

	// Basic validation: no spec to assert strictness, so missing
	// connection details are warnings only.
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.True(t, hasMention(result.Warnings, "server.host or server.url"))
	assert.True(t, hasMention(result.Warnings, "server.port"))
}

func TestAccount_BasicMissingServerType(t *testing.T) {
	rec := baseAccount("nosuch", "nosuch_link", "default")
	rec.Server = account.Server{Auto: true}

	result := Account(rec, nil)
	assert.False(t, result.Valid)
	assert.True(t, hasMention(result.Errors, "server.type"))
}

func TestAccount_EndToEndTelegram(t *testing.T) {
	// Spec {key: telegram, required: [id, server.access_token]} against
	// record {id: mybot, server.access_token: abc}: valid with exactly
	// one warning from the token-format rule.
	spec := mustSpec(t, "telegram")

	rec := baseAccount("telegram", "telegram_poll", "default")
	rec.ID = account.NewID("mybot")
	rec.Server.AccessToken = "abc"

	result := Account(rec, spec)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.True(t, hasMention(result.Warnings, "id"))
	assert.NoError(t, result.Err())
}

func TestResult_Err(t *testing.T) {
	r := newResult()
	r.AddWarning("meh")
	assert.True(t, r.Valid)
	assert.NoError(t, r.Err(), "warnings alone never produce an error")

	r.AddError("boom")
	assert.False(t, r.Valid)

	err := r.Err()
	require.Error(t, err)
	var fe *FailedError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{"boom"}, fe.Errors)
	assert.Equal(t, []string{"meh"}, fe.Warnings)
}

func TestExtends(t *testing.T) {
	spec := mustSpec(t, "hackChat")

	result := Extends(spec, map[string]string{"ws_path": "wss://example/ws"})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)

	result = Extends(spec, map[string]string{"nope": "x"})
	assert.True(t, result.Valid)
	assert.True(t, hasMention(result.Warnings, "nope"))

	// Adapters with no declared extension options accept anything.
	result = Extends(mustSpec(t, "telegram"), map[string]string{"whatever": "x"})
	assert.Empty(t, result.Warnings)
}
