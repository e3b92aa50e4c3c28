package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olivos-dev/olivctl/internal/account"
	"github.com/olivos-dev/olivctl/internal/adapter"
	"github.com/olivos-dev/olivctl/internal/cli/output"
	"github.com/olivos-dev/olivctl/internal/cli/prompt"
	"github.com/olivos-dev/olivctl/internal/validate"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the bot's account collection",
		Long: `Manage the accounts persisted in account.json under the OlivOS
install directory. Records are validated against the adapter catalog
before anything is written.`,
	}
	cmd.AddCommand(newAccountListCommand())
	cmd.AddCommand(newAccountShowCommand())
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountRemoveCommand())
	cmd.AddCommand(newAccountSetCommand())
	cmd.AddCommand(newAccountValidateCommand())
	return cmd
}

// accountServerLabel summarizes a record's connection block for the list
// view.
func accountServerLabel(acc *account.Account) string {
	if acc.Server.Auto {
		return "auto"
	}
	if acc.Server.URL != "" {
		return acc.Server.URL
	}
	if acc.Server.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", acc.Server.Host, acc.Server.Port)
}

func newAccountListCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured accounts",
		Example: `  # List everything
  olivctl account list

  # List only OneBot accounts
  olivctl account list --family onebot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			var (
				accounts []*account.Account
				err      error
			)
			if family != "" {
				accounts, err = cmdCtx.Store.ListByFamily(family)
			} else {
				accounts, err = cmdCtx.Store.List()
			}
			if err != nil {
				return err
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(accounts)
			}

			if len(accounts) == 0 {
				r.Muted("no accounts configured (%s)", cmdCtx.Cfg.AccountPath())
				return nil
			}

			rows := make([][]string, 0, len(accounts))
			for _, acc := range accounts {
				rows = append(rows, []string{
					acc.ID.String(), acc.Platform, acc.SDK, acc.Model,
					accountServerLabel(acc),
				})
			}
			r.Table([]string{"ID", "Platform", "SDK", "Model", "Server"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "Restrict to one adapter family (e.g. onebot, telegram)")
	return cmd
}

func newAccountShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one account in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			acc, err := cmdCtx.Store.Get(args[0])
			if err != nil {
				return err
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(acc)
			}

			r.Header(fmt.Sprintf("Account %s", acc.ID.String()))
			r.Line("Platform: %s", acc.Platform)
			r.Line("SDK:      %s", acc.SDK)
			r.Line("Model:    %s", acc.Model)
			r.Line("Debug:    %t", acc.Debug)
			r.Line("")
			r.Header("Server")
			r.Line("Auto:  %t", acc.Server.Auto)
			r.Line("Type:  %s", acc.Server.Type)
			if acc.Server.Host != "" {
				r.Line("Host:  %s", acc.Server.Host)
			}
			if acc.Server.Port != 0 {
				r.Line("Port:  %d", acc.Server.Port)
			}
			if acc.Server.URL != "" {
				r.Line("URL:   %s", acc.Server.URL)
			}
			if acc.Server.AccessToken != "" {
				r.Line("Token: (set)")
			}
			if len(acc.Extends) > 0 {
				r.Line("")
				r.Header("Extends")
				for k, v := range acc.Extends {
					r.Line("%s: %s", k, v)
				}
			}

			if spec, err := cmdCtx.Registry.Resolve(acc.Platform, acc.SDK, resolutionModel(acc)); err == nil {
				r.Line("")
				r.Muted("adapter: %s (%s)", spec.Name, spec.Key)
			}
			return nil
		},
	}
}

// resolutionModel maps a record's model_type to the catalog's resolution
// model: variant models resolve through the adapter's canonical entry.
func resolutionModel(acc *account.Account) string {
	if acc.Model == "" {
		return "default"
	}
	return acc.Model
}

// addOptions carries the account add flags.
type addOptions struct {
	adapterKey  string
	id          string
	password    string
	model       string
	host        string
	port        int
	accessToken string
	url         string
	extends     []string
	debug       bool

	yes            bool
	nonInteractive bool
}

func newAccountAddCommand() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new account",
		Long: `Add an account to the collection. Missing values are prompted for
interactively; with --non-interactive every required value must come
from a flag.

The record is validated against its adapter before being written.
Validation errors abort the add; warnings ask for confirmation unless
--yes is given.`,
		Example: `  # Interactive setup
  olivctl account add

  # Scripted Telegram account
  olivctl account add --adapter telegram --id 12345:SECRET --yes --non-interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAccountAdd(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.adapterKey, "adapter", "", "Adapter catalog key (see: olivctl adapter list)")
	cmd.Flags().StringVar(&opts.id, "id", "", "Account id (number or token, depending on platform)")
	cmd.Flags().StringVar(&opts.password, "password", "", "Account password or app secret")
	cmd.Flags().StringVar(&opts.model, "model", "", "Model variant for adapters that have them")
	cmd.Flags().StringVar(&opts.host, "host", "", "Server host for manually configured adapters")
	cmd.Flags().IntVar(&opts.port, "port", 0, "Server port for manually configured adapters")
	cmd.Flags().StringVar(&opts.accessToken, "access-token", "", "Server access token")
	cmd.Flags().StringVar(&opts.url, "url", "", "Server URL, as an alternative to host and port")
	cmd.Flags().StringArrayVar(&opts.extends, "extends", nil, "Platform extension field as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable the account's debug mode")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Proceed past validation warnings without asking")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Never prompt; fail when a value is missing")

	return cmd
}

func runAccountAdd(cmd *cobra.Command, opts *addOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	reg := cmdCtx.Registry

	spec, err := chooseSpec(reg, opts)
	if err != nil {
		return err
	}

	acc, err := buildAccount(spec, opts)
	if err != nil {
		return err
	}

	result := validate.AccountWith(reg, acc, spec)
	for _, msg := range result.Errors {
		r.Error("error: %s", msg)
	}
	for _, msg := range result.Warnings {
		r.Warning("warning: %s", msg)
	}
	if !result.Valid {
		return fmt.Errorf("account %s failed validation", acc.ID.String())
	}
	if len(result.Warnings) > 0 && !opts.yes {
		if opts.nonInteractive {
			return fmt.Errorf("account %s has validation warnings (pass --yes to add anyway)", acc.ID.String())
		}
		ok, err := prompt.Confirm("Add anyway", false)
		if err != nil {
			return err
		}
		if !ok {
			r.Muted("aborted")
			return nil
		}
	}

	if err := cmdCtx.Store.Add(acc); err != nil {
		return err
	}
	r.Success("added account %s (%s)", acc.ID.String(), spec.Key)
	return nil
}

// chooseSpec resolves the adapter from the flag, or interactively from the
// catalog.
func chooseSpec(reg *adapter.Registry, opts *addOptions) (*adapter.Spec, error) {
	if opts.adapterKey != "" {
		return reg.Get(opts.adapterKey)
	}
	if opts.nonInteractive {
		return nil, errors.New("--adapter is required in non-interactive mode")
	}

	specs := reg.List()
	choices := make([]string, len(specs))
	for i, s := range specs {
		choices[i] = fmt.Sprintf("%s (%s)", s.Name, s.Key)
	}
	idx, err := prompt.Select("Adapter", choices)
	if err != nil {
		return nil, err
	}
	return specs[idx], nil
}

// buildAccount assembles the record from flags and, when allowed, prompts
// for whatever the adapter requires that is still missing.
func buildAccount(spec *adapter.Spec, opts *addOptions) (*account.Account, error) {
	server := account.DefaultServer()
	server.Auto = spec.ServerAuto
	server.Type = string(spec.ServerType)
	if opts.host != "" {
		server.Host = opts.host
	}
	if opts.port != 0 {
		server.Port = opts.port
	}
	if opts.accessToken != "" {
		server.AccessToken = opts.accessToken
	}
	if opts.url != "" {
		server.URL = opts.url
	}

	extends, err := parseExtends(opts.extends)
	if err != nil {
		return nil, err
	}

	acc := &account.Account{
		ID:       parseID(opts.id),
		Password: opts.password,
		SDK:      spec.SDK,
		Platform: spec.Platform,
		Model:    spec.Model,
		Extends:  extends,
		Debug:    opts.debug,
		Server:   server,
	}

	if opts.model != "" {
		if len(spec.ModelOptions) > 0 {
			if _, ok := spec.ModelOptions[opts.model]; !ok {
				return nil, fmt.Errorf("adapter %s has no model variant %q", spec.Key, opts.model)
			}
		}
		acc.Model = opts.model
	} else if len(spec.ModelOptions) > 0 && !opts.nonInteractive {
		variants := sortedKeys(spec.ModelOptions)
		choices := make([]string, len(variants))
		for i, v := range variants {
			choices[i] = fmt.Sprintf("%s (%s)", spec.ModelOptions[v], v)
		}
		idx, err := prompt.Select("Model variant", choices)
		if err != nil {
			return nil, err
		}
		acc.Model = variants[idx]
	}

	if !opts.nonInteractive {
		if err := promptRequired(spec, acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// promptRequired walks the adapter's required field paths and asks for any
// value that is still blank. Secrets are read without echo.
func promptRequired(spec *adapter.Spec, acc *account.Account) error {
	for _, path := range spec.RequiredFields {
		switch path {
		case "id":
			if acc.ID.IsZero() {
				answer, err := prompt.AskRequired("Account id")
				if err != nil {
					return err
				}
				acc.ID = parseID(answer)
			}
		case "password":
			if acc.Password == "" {
				answer, err := prompt.Secret("Password")
				if err != nil {
					return err
				}
				acc.Password = answer
			}
		case "server.access_token":
			if acc.Server.AccessToken == "" {
				answer, err := prompt.Secret("Access token")
				if err != nil {
					return err
				}
				acc.Server.AccessToken = answer
			}
		case "server.host":
			answer, err := prompt.Ask("Server host", acc.Server.Host)
			if err != nil {
				return err
			}
			acc.Server.Host = answer
		case "server.port":
			answer, err := prompt.Ask("Server port", strconv.Itoa(acc.Server.Port))
			if err != nil {
				return err
			}
			port, err := strconv.Atoi(answer)
			if err != nil {
				return fmt.Errorf("invalid port %q", answer)
			}
			acc.Server.Port = port
		}
	}
	return nil
}

// parseID keeps all-digit ids in their numeric form so the persisted
// document matches what OlivOS itself writes for QQ-style numeric ids.
func parseID(s string) account.ID {
	if s == "" {
		return account.ID{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return account.NewNumericID(n)
	}
	return account.NewID(s)
}

func parseExtends(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return map[string]string{}, nil
	}
	extends := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid extends value %q (expected key=value)", pair)
		}
		extends[key] = value
	}
	return extends, nil
}

func newAccountRemoveCommand() *cobra.Command {
	var (
		sdk    string
		family string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove accounts",
		Long: `Remove accounts by id, optionally scoped to one SDK when the same id
is configured on several adapters. With --family, remove every account
of an adapter family instead.`,
		Example: `  # Remove one account
  olivctl account remove 10001

  # Same id exists under two SDKs; remove only the OneBot one
  olivctl account remove 10001 --sdk onebot

  # Remove all Telegram accounts
  olivctl account remove --family telegram --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			if family != "" {
				if len(args) > 0 {
					return errors.New("--family removes by adapter family; an id cannot be given as well")
				}
				count, err := cmdCtx.Store.CountByFamily(family)
				if err != nil {
					return err
				}
				if count == 0 {
					r.Muted("no %s accounts configured", family)
					return nil
				}
				if !yes {
					ok, err := prompt.Confirm(fmt.Sprintf("Remove %d %s account(s)", count, family), false)
					if err != nil {
						return err
					}
					if !ok {
						r.Muted("aborted")
						return nil
					}
				}
				removed, err := cmdCtx.Store.RemoveByFamily(family)
				if err != nil {
					return err
				}
				r.Success("removed %d account(s)", removed)
				return nil
			}

			if len(args) == 0 {
				return errors.New("an account id (or --family) is required")
			}
			id := args[0]

			removed, err := cmdCtx.Store.Remove(id, sdk)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("account %q: %w", id, account.ErrAccountNotFound)
			}
			r.Success("removed account %s", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&sdk, "sdk", "", "Only remove the record with this sdk_type")
	cmd.Flags().StringVar(&family, "family", "", "Remove every account of this adapter family")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newAccountSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field>=<value>...",
		Short: "Update fields on an account",
		Long: `Update fields on the first account matching id. Field names are the
persisted ones (password, platform_type, sdk_type, model_type, debug,
server.auto, server.type, server.host, server.port, server.access_token,
server.url). Unknown fields are ignored with a warning.`,
		Example: `  # Point an account at a different reverse proxy
  olivctl account set 10001 server.host=10.0.0.5 server.port=8080

  # Toggle debug
  olivctl account set 10001 debug=true`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			id := args[0]

			patch := account.Patch{}
			for _, pair := range args[1:] {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid assignment %q (expected field=value)", pair)
				}
				field, known := account.ParseField(name)
				if !known {
					r.Warning("ignoring unknown field %q", name)
					continue
				}
				patch[field] = value
			}
			if len(patch) == 0 {
				return errors.New("no known fields to update")
			}

			changed, err := cmdCtx.Store.Update(id, patch)
			if err != nil {
				return err
			}
			if !changed {
				return fmt.Errorf("account %q: %w", id, account.ErrAccountNotFound)
			}
			r.Success("updated account %s", id)
			return nil
		},
	}
}

// validationReport is the JSON shape for one account's validation outcome.
type validationReport struct {
	ID       string   `json:"id"`
	Platform string   `json:"platform"`
	SDK      string   `json:"sdk"`
	Model    string   `json:"model"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func newAccountValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [id]",
		Short: "Validate accounts against the adapter catalog",
		Long: `Validate one account, or the whole collection when no id is given.
Accounts whose adapter cannot be resolved get the schema-independent
basic checks. The command fails when any account has errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			var accounts []*account.Account
			if len(args) == 1 {
				acc, err := cmdCtx.Store.Get(args[0])
				if err != nil {
					return err
				}
				accounts = []*account.Account{acc}
			} else {
				var err error
				accounts, err = cmdCtx.Store.List()
				if err != nil {
					return err
				}
			}

			reports := make([]validationReport, 0, len(accounts))
			failed := 0
			for _, acc := range accounts {
				result := validate.AccountWith(cmdCtx.Registry, acc, nil)
				if !result.Valid {
					failed++
				}
				reports = append(reports, validationReport{
					ID:       acc.ID.String(),
					Platform: acc.Platform,
					SDK:      acc.SDK,
					Model:    acc.Model,
					Valid:    result.Valid,
					Errors:   result.Errors,
					Warnings: result.Warnings,
				})
			}

			if r.EffectiveMode() == output.ModeJSON {
				if err := r.JSON(reports); err != nil {
					return err
				}
			} else {
				for _, rep := range reports {
					label := fmt.Sprintf("%s (%s/%s/%s)", rep.ID, rep.Platform, rep.SDK, rep.Model)
					switch {
					case !rep.Valid:
						r.Error("FAIL %s", label)
					case len(rep.Warnings) > 0:
						r.Warning("WARN %s", label)
					default:
						r.Success("OK   %s", label)
					}
					for _, msg := range rep.Errors {
						r.Line("      error: %s", msg)
					}
					for _, msg := range rep.Warnings {
						r.Line("      warning: %s", msg)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d account(s) failed validation", failed)
			}
			return nil
		},
	}
}
