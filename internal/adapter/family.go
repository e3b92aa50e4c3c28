package adapter

// FamilySpec is a coarse adapter family used for bulk account operations.
// A family groups every model variant that shares one sdk_type value, so it
// is deliberately coarser than the (platform, sdk, model) resolution key.
type FamilySpec struct {
	Key         string
	SDK         string
	Platform    string
	Name        string
	Description string
}

// families lists the bulk-operation families in declaration order.
var families = []FamilySpec{
	{Key: "onebot", SDK: "onebot", Platform: "qq", Name: "OneBot V11", Description: "standard OneBot V11 protocol adapters"},
	{Key: "onebot12", SDK: "onebotV12", Platform: "qq", Name: "OneBot V12", Description: "standard OneBot V12 protocol adapters"},
	{Key: "telegram", SDK: "telegram_poll", Platform: "telegram", Name: "Telegram", Description: "Telegram bot adapters"},
	{Key: "discord", SDK: "discord", Platform: "discord", Name: "Discord", Description: "Discord bot adapters"},
	{Key: "qqguild", SDK: "qqGuild", Platform: "qqGuild", Name: "QQ Guild", Description: "QQ Guild adapters"},
	{Key: "qqguildv2", SDK: "qqGuildv2", Platform: "qqGuild", Name: "QQ Guild V2", Description: "QQ Guild V2 adapters"},
	{Key: "dingtalk", SDK: "dingtalk", Platform: "dingtalk", Name: "DingTalk", Description: "DingTalk bot adapters"},
	{Key: "kaiheila", SDK: "kaiheila", Platform: "kaiheila", Name: "KOOK", Description: "KOOK adapters"},
	{Key: "dodo", SDK: "dodo", Platform: "dodo", Name: "DoDo", Description: "DoDo adapters"},
	{Key: "fanbook", SDK: "fanbook", Platform: "fanbook", Name: "Fanbook", Description: "Fanbook adapters"},
	{Key: "mhyvila", SDK: "mhyVila", Platform: "mhyVila", Name: "miHoYo Villa", Description: "miHoYo Villa adapters"},
	{Key: "bililive", SDK: "biliLive", Platform: "biliLive", Name: "Bilibili Live", Description: "Bilibili live-stream adapters"},
	{Key: "xiaoheihe", SDK: "xiaoheihe", Platform: "xiaoheihe", Name: "Xiaoheihe", Description: "Xiaoheihe adapters"},
	{Key: "virtual", SDK: "virtualTerminal", Platform: "virtual", Name: "Virtual terminal", Description: "virtual terminal adapters for testing"},
}

// Family looks up a bulk-operation family by key.
func Family(key string) (FamilySpec, bool) {
	for _, f := range families {
		if f.Key == key {
			return f, true
		}
	}
	return FamilySpec{}, false
}

// Families returns all bulk-operation families in declaration order.
func Families() []FamilySpec {
	out := make([]FamilySpec, len(families))
	copy(out, families)
	return out
}
