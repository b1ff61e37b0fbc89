// Package cmd implements the charsets command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/charsets"
	"github.com/reoring/charsets/i18n"
	"github.com/reoring/charsets/iana"
	"github.com/reoring/charsets/internal/config"
	"github.com/reoring/charsets/table"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile string
	flags   config.Config
	verbose bool

	cfg config.Config
	reg *charsets.Registry
	log *slog.Logger
}

// Execute runs the command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "charsets",
		Short: "Resolve and list character-set names",
		Long: `charsets resolves character-set names and aliases to their canonical
IANA name (or to the names of a custom table) and lists registered sets.

Matching ignores ASCII case. No text is converted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.setup(c)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: "+config.DefaultPath()+" if present)")
	pf.StringVar(&a.flags.Table, "table", "", "custom table file (.yaml, .json or .toml) instead of the IANA table")
	pf.StringVar(&a.flags.Format, "format", config.FormatText, "output format: text or json")
	pf.StringVar(&a.flags.Language, "lang", "en", "message language: en or ja")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newResolveCommand(a), newShowCommand(a), newListCommand(a), newCheckCommand(a))
	return root
}

func (a *app) setup(c *cobra.Command) error {
	lvl := slog.LevelWarn
	if a.verbose {
		lvl = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	path, optional := a.cfgFile, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	fl := c.Flags()
	if fl.Changed("table") {
		cfg.Table = a.flags.Table
	}
	if fl.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if fl.Changed("lang") {
		cfg.Language = a.flags.Language
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	i18n.SetLanguage(cfg.Language)
	a.log.Debug("configuration", "file", path, "table", cfg.Table, "format", cfg.Format, "language", cfg.Language)

	if cfg.Table == "" {
		a.reg = iana.Registry
		return nil
	}
	reg, err := table.Load(cfg.Table)
	if err != nil {
		return err
	}
	a.log.Debug("loaded table", "path", cfg.Table, "records", reg.Len())
	a.reg = reg
	return nil
}

func (a *app) json() bool { return a.cfg.Format == config.FormatJSON }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// charsetView is the JSON shape of one record.
type charsetView struct {
	Name      string   `json:"name"`
	MIME      string   `json:"mime,omitempty"`
	Aliases   []string `json:"aliases,omitempty"`
	MatchKeys []string `json:"match_keys,omitempty"`
}

func viewOf(cs charsets.Charset, detailed bool) charsetView {
	v := charsetView{Name: cs.Name()}
	v.MIME, _ = cs.PreferredMIMEName()
	if detailed {
		v.Aliases = cs.Aliases()
		v.MatchKeys = cs.MatchKeys()
	}
	return v
}
