package commands

import (
	"fmt"
	"sort"

	"github.com/olivos-dev/olivctl/internal/adapter"
	"github.com/olivos-dev/olivctl/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewAdapterCommand creates the adapter command group.
func NewAdapterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adapter",
		Short: "Inspect the supported platform adapters",
	}
	cmd.AddCommand(newAdapterListCommand())
	cmd.AddCommand(newAdapterShowCommand())
	return cmd
}

// adapterInfo is the JSON shape for one adapter spec.
type adapterInfo struct {
	Key            string            `json:"key"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Platform       string            `json:"platform"`
	SDK            string            `json:"sdk"`
	Model          string            `json:"model"`
	ServerType     string            `json:"server_type"`
	ServerAuto     bool              `json:"server_auto"`
	RequiredFields []string          `json:"required_fields,omitempty"`
	OptionalFields []string          `json:"optional_fields,omitempty"`
	ModelOptions   map[string]string `json:"model_options,omitempty"`
}

func specInfo(s *adapter.Spec) adapterInfo {
	return adapterInfo{
		Key:            s.Key,
		Name:           s.Name,
		Description:    s.Description,
		Platform:       s.Platform,
		SDK:            s.SDK,
		Model:          s.Model,
		ServerType:     string(s.ServerType),
		ServerAuto:     s.ServerAuto,
		RequiredFields: s.RequiredFields,
		OptionalFields: s.OptionalFields,
		ModelOptions:   s.ModelOptions,
	}
}

// serverLabel summarizes how an adapter connects.
func serverLabel(s *adapter.Spec) string {
	if s.ServerAuto {
		return fmt.Sprintf("%s (auto)", s.ServerType)
	}
	return string(s.ServerType)
}

func newAdapterListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all supported adapters",
		Long: `List every adapter the tool knows about, grouped by platform family.

Use --output json for a machine-readable catalog.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			reg := cmdCtx.Registry

			if r.EffectiveMode() == output.ModeJSON {
				infos := make([]adapterInfo, 0, len(reg.List()))
				for _, s := range reg.List() {
					infos = append(infos, specInfo(s))
				}
				return r.JSON(infos)
			}

			for _, group := range reg.Groups() {
				r.Header(group.Label)
				rows := make([][]string, 0, len(group.Keys))
				for _, key := range group.Keys {
					s, err := reg.Get(key)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						s.Key, s.Name, s.Platform, s.SDK, serverLabel(s),
					})
				}
				r.Table([]string{"Key", "Name", "Platform", "SDK", "Server"}, rows)
				r.Line("")
			}
			return nil
		},
	}
}

func newAdapterShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show one adapter in detail",
		Example: `  # Show the Telegram adapter
  olivctl adapter show telegram`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			s, err := cmdCtx.Registry.Get(args[0])
			if err != nil {
				return err
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(specInfo(s))
			}

			r.Header(fmt.Sprintf("%s (%s)", s.Name, s.Key))
			if s.Description != "" {
				r.Line("%s", s.Description)
			}
			r.Line("")
			r.Line("Platform: %s", s.Platform)
			r.Line("SDK:      %s", s.SDK)
			r.Line("Model:    %s", s.Model)
			r.Line("Server:   %s", serverLabel(s))

			if len(s.RequiredFields) > 0 {
				r.Line("")
				r.Header("Required fields")
				for _, f := range s.RequiredFields {
					if s.IsOptional(f) {
						r.Line("  %s (may be left blank)", f)
						continue
					}
					r.Line("  %s", f)
				}
			}
			if len(s.OptionalFields) > 0 {
				r.Line("")
				r.Header("Optional fields")
				for _, f := range s.OptionalFields {
					r.Line("  %s", f)
				}
			}

			if len(s.ModelOptions) > 0 {
				r.Line("")
				r.Header("Model variants")
				for _, model := range sortedKeys(s.ModelOptions) {
					r.Line("  %-24s %s", model, s.ModelOptions[model])
				}
			}

			if len(s.ExtendsOptions) > 0 {
				r.Line("")
				r.Header("Extends fields")
				names := make([]string, 0, len(s.ExtendsOptions))
				for name := range s.ExtendsOptions {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					opt := s.ExtendsOptions[name]
					r.Line("  %-24s %s (%s)", name, opt.Description, opt.Type)
				}
			}

			if s.HelpText != "" {
				r.Line("")
				r.Muted("%s", s.HelpText)
			}
			return nil
		},
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
