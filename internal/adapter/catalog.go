package adapter

// Model-variant tables, one per adapter family that offers a choice.
// Keys are the exact model_type values OlivOS expects in account.json.

var onebotV11Models = map[string]string{
	"default":                     "Default",
	"napcat":                      "NapCat",
	"napcat_hide":                 "NapCat (hidden)",
	"napcat_show":                 "NapCat (visible)",
	"napcat_show_new":             "NapCat (new)",
	"napcat_show_old":             "NapCat (legacy)",
	"napcat_default":              "NapCat (default)",
	"shamrock_default":            "Shamrock (default)",
	"para_default":                "Para message mode",
	"gocqhttp_show":               "GoCqHttp",
	"gocqhttp_show_Android_Phone": "GoCqHttp (Android phone)",
	"gocqhttp_show_Android_Pad":   "GoCqHttp (Android tablet)",
	"gocqhttp_show_Android_Watch": "GoCqHttp (Android watch)",
	"gocqhttp_show_iPad":          "GoCqHttp (iPad)",
	"gocqhttp_show_iMac":          "GoCqHttp (iMac)",
	"gocqhttp_show_old":           "GoCqHttp (legacy)",
	"walleq_show":                 "WalleQ",
	"walleq_show_Android_Phone":   "WalleQ (Android phone)",
	"walleq_show_Android_Pad":     "WalleQ (Android tablet)",
	"walleq_show_Android_Watch":   "WalleQ (Android watch)",
	"walleq_show_iPad":            "WalleQ (iPad)",
	"walleq_show_iMac":            "WalleQ (iMac)",
	"walleq_show_old":             "WalleQ (legacy)",
	"llonebot_default":            "LLOneBot",
	"lagrange_default":            "Lagrange",
}

var onebotV12Models = map[string]string{
	"onebotV12": "OneBot 12",
}

var qqGuildModels = map[string]string{
	"default": "QQ Guild V1",
	"public":  "QQ Guild V1 (public)",
	"private": "QQ Guild V1 (private)",
}

var qqGuildV2Models = map[string]string{
	"default":           "QQ Guild V2",
	"public":            "QQ Guild V2 (public)",
	"public_guild_only": "QQ Guild V2 (guild only)",
	"public_intents":    "QQ Guild V2 (custom intents)",
	"private":           "QQ Guild V2 (private)",
	"private_intents":   "QQ Guild V2 (private + intents)",
}

var opqbotModels = map[string]string{
	"opqbot_default":  "OPQBot (default)",
	"opqbot_port":     "OPQBot (fixed port)",
	"opqbot_port_old": "OPQBot (fixed port, legacy)",
}

var redModels = map[string]string{
	"red": "RED protocol",
}

var telegramModels = map[string]string{
	"default": "Telegram Bot",
}

var discordModels = map[string]string{
	"default": "Discord Bot",
}

var kaiheilaModels = map[string]string{
	"default": "KOOK",
	"text":    "KOOK (plain-text compatible)",
}

var dingtalkModels = map[string]string{
	"default": "DingTalk open platform",
}

var biliLiveModels = map[string]string{
	"default": "Guest mode",
	"login":   "Login mode",
}

var mhyVilaModels = map[string]string{
	"default": "miHoYo Villa",
	"public":  "Public",
	"private": "Private",
}

var dodoModels = map[string]string{
	"default": "Dodo V2",
	"v1":      "Dodo V1",
}

var fanbookModels = map[string]string{
	"default": "Fanbook open platform",
}

var hackChatModels = map[string]string{
	"default": "Hack.Chat",
	"private": "Hack.Chat (private server)",
}

var xiaoheiheModels = map[string]string{
	"default": "Xiaoheihe open platform",
}

var virtualTerminalModels = map[string]string{
	"default": "Virtual terminal",
	"postapi": "HTTP endpoint terminal",
	"ff14":    "FF14 terminal",
}

// catalog lists every adapter profile in declaration order. The order is
// part of the registry contract: List() and Groups() enumerate in it.
var catalog = []*Spec{
	{
		Key:            "onebotV11",
		Name:           "OneBot V11 (QQ)",
		Description:    "OneBot 11 protocol adapter",
		HelpText:       "Works with NapCat, GoCqHttp, WalleQ, Shamrock, LLOneBot, Lagrange and other implementations",
		Platform:       "qq",
		SDK:            "onebot",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerPost,
		RequiredFields: []string{"id"},
		OptionalFields: []string{"password", "server.access_token"},
		ModelOptions:   onebotV11Models,
	},
	{
		Key:            "onebotV12",
		Name:           "OneBot V12 (QQ)",
		Description:    "OneBot 12 protocol adapter",
		HelpText:       "For Walle-Q, ComWeChatBot and similar endpoints",
		Platform:       "qq",
		SDK:            "onebot",
		Model:          "onebotV12",
		ServerAuto:     false,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.host", "server.port"},
		OptionalFields: []string{"server.access_token"},
		ModelOptions:   onebotV12Models,
	},
	{
		Key:            "qqGuild",
		Name:           "QQ Guild",
		Description:    "QQ Guild open platform",
		HelpText:       "V1 interface",
		Platform:       "qqGuild",
		SDK:            "qqGuild_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.access_token"},
		OptionalFields: []string{"password"},
		ModelOptions:   qqGuildModels,
	},
	{
		Key:            "qqGuildV2",
		Name:           "QQ Guild V2",
		Description:    "QQ Guild open platform V2",
		HelpText:       "V2 interface, supports official QQ group bots",
		Platform:       "qqGuild",
		SDK:            "qqGuildv2_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.access_token"},
		OptionalFields: []string{"password"},
		ModelOptions:   qqGuildV2Models,
	},
	{
		Key:            "OPQBot",
		Name:           "OPQBot (QQ)",
		Description:    "OPQBot remote protocol endpoint",
		HelpText:       "Requires a token issued by OPQ; the account carries security risk",
		Platform:       "qq",
		SDK:            "onebot",
		Model:          "opqbot_default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "password"},
		ModelOptions:   opqbotModels,
	},
	{
		Key:            "red",
		Name:           "RED protocol (QQ)",
		Description:    "Chronocat RED protocol",
		HelpText:       "Chronocat is no longer maintained",
		Platform:       "qq",
		SDK:            "onebot",
		Model:          "red",
		ServerAuto:     false,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.host", "server.port", "server.access_token"},
		OptionalFields: []string{"extends.http-path"},
		ModelOptions:   redModels,
		ExtendsOptions: map[string]ExtendsOption{
			"http-path": {Type: "string", Description: "HTTP endpoint address"},
		},
	},
	{
		Key:            "telegram",
		Name:           "Telegram",
		Description:    "Telegram Bot",
		HelpText:       "Create the bot via @botfather; token format is id:token",
		Platform:       "telegram",
		SDK:            "telegram_poll",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerPost,
		RequiredFields: []string{"id", "server.access_token"},
		ModelOptions:   telegramModels,
	},
	{
		Key:            "discord",
		Name:           "Discord",
		Description:    "Discord Bot",
		HelpText:       "Obtain the token from the Discord developer portal",
		Platform:       "discord",
		SDK:            "discord_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"server.access_token"},
		OptionalFields: []string{"id"},
		ModelOptions:   discordModels,
	},
	{
		Key:            "kaiheila",
		Name:           "KOOK",
		Description:    "KOOK open platform",
		HelpText:       "Plain-text compatible mode sends text only and avoids permission issues",
		Platform:       "kaiheila",
		SDK:            "kaiheila_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"server.access_token"},
		ModelOptions:   kaiheilaModels,
	},
	{
		Key:            "dingtalk",
		Name:           "DingTalk",
		Description:    "DingTalk open platform",
		HelpText:       "id is the bot account's Robot Code",
		Platform:       "dingtalk",
		SDK:            "dingtalk_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id"},
		ModelOptions:   dingtalkModels,
	},
	{
		Key:            "biliLive",
		Name:           "Bilibili Live",
		Description:    "Bilibili live-stream danmaku",
		HelpText:       "Guest mode is read-only; login mode can send messages",
		Platform:       "biliLive",
		SDK:            "biliLive_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"server.access_token"},
		ModelOptions:   biliLiveModels,
	},
	{
		Key:            "mhyVila",
		Name:           "miHoYo Villa",
		Description:    "miHoYo Villa open platform",
		HelpText:       "server.port carries the villa number and is only needed in sandbox mode",
		Platform:       "mhyVila",
		SDK:            "mhyVila_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "password", "server.access_token"},
		OptionalFields: []string{"server.port"},
		ModelOptions:   mhyVilaModels,
	},
	{
		Key:            "dodo",
		Name:           "Dodo",
		Description:    "Dodo open platform",
		HelpText:       "Provides V1 and V2 interfaces",
		Platform:       "dodo",
		SDK:            "dodo_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.access_token"},
		ModelOptions:   dodoModels,
	},
	{
		Key:            "fanbook",
		Name:           "Fanbook",
		Description:    "Fanbook open platform",
		HelpText:       "Obtain the token from Fanbook",
		Platform:       "fanbook",
		SDK:            "fanbook_poll",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerPost,
		RequiredFields: []string{"server.access_token"},
		ModelOptions:   fanbookModels,
	},
	{
		Key:            "hackChat",
		Name:           "Hack.Chat",
		Description:    "Hack.Chat protocol",
		HelpText:       "id is the room name; server.access_token is the bot name",
		Platform:       "hackChat",
		SDK:            "hackChat_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id", "server.access_token", "password"},
		OptionalFields: []string{"extends.ws_path"},
		ModelOptions:   hackChatModels,
		ExtendsOptions: map[string]ExtendsOption{
			"ws_path": {Type: "string", Description: "private websocket server address"},
		},
	},
	{
		Key:            "xiaoheihe",
		Name:           "Xiaoheihe",
		Description:    "Xiaoheihe open platform",
		HelpText:       "Obtain the token from Xiaoheihe",
		Platform:       "xiaoheihe",
		SDK:            "xiaoheihe_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"server.access_token"},
		ModelOptions:   xiaoheiheModels,
	},
	{
		Key:            "virtualTerminal",
		Name:           "Virtual terminal",
		Description:    "Virtual chat terminal",
		HelpText:       "For plugin debugging and testing",
		Platform:       "terminal",
		SDK:            "terminal_link",
		Model:          "default",
		ServerAuto:     true,
		ServerType:     ServerWebsocket,
		RequiredFields: []string{"id"},
		ModelOptions:   virtualTerminalModels,
	},
}

// groups is the hand-curated presentational grouping of catalog keys. It is
// independent of the resolution key and exists purely for enumeration shown
// to an operator.
var groups = []Group{
	{Label: "QQ platforms", Keys: []string{"onebotV11", "onebotV12", "qqGuild", "qqGuildV2", "OPQBot", "red"}},
	{Label: "Chat apps", Keys: []string{"telegram", "discord", "kaiheila", "dingtalk", "fanbook"}},
	{Label: "Live & games", Keys: []string{"biliLive", "mhyVila", "dodo", "xiaoheihe"}},
	{Label: "Other", Keys: []string{"hackChat", "virtualTerminal"}},
}
