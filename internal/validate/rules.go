package validate

import (
	"strings"

	"github.com/olivos-dev/olivctl/internal/account"
)

// specialRule is one platform-specific check evaluated after the generic
// rules. Rules are additive: they append warnings or errors and never
// override the generic verdict.
type specialRule struct {
	when    func(*account.Account) bool
	fatal   bool
	message string
}

// specialRules is keyed by adapter key. The set of platforms grows
// independently of the generic engine; new platforms add entries here
// without touching the field-path or server-shape checks.
var specialRules = map[string][]specialRule{
	"telegram": {
		{
			when: func(a *account.Account) bool {
				return !strings.Contains(a.ID.String(), ":")
			},
			message: "telegram operator token is conventionally id:token",
		},
	},
	"qqGuildV2": {
		{
			when: func(a *account.Account) bool {
				if !strings.Contains(a.Model, "intents") {
					return false
				}
				_, ok := a.Extends["intents"]
				return !ok
			},
			message: "intents model variants require an intents value in extends",
		},
	},
	"mhyVila": {
		{
			when: func(a *account.Account) bool {
				return a.Model == "sandbox" && a.Server.Port == 0
			},
			fatal:   true,
			message: "sandbox model requires server.port (villa number)",
		},
	},
	"biliLive": {
		{
			when: func(a *account.Account) bool {
				return a.Model == "default"
			},
			message: "guest mode can read messages but cannot send them",
		},
	},
}
