package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/charsets"
)

var errUnresolved = errors.New("some names could not be resolved")

type resolveResult struct {
	Input string `json:"input"`
	Name  string `json:"name,omitempty"`
	Label string `json:"label,omitempty"`
	Error string `json:"error,omitempty"`
}

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Print the canonical name for each given name or alias",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			results := make([]resolveResult, 0, len(args))
			failed := 0
			for _, in := range args {
				r := resolveResult{Input: in}
				cs, err := a.reg.Parse(in)
				if err != nil {
					failed++
					r.Error = err.Error()
					a.log.Debug("unresolved", "input", in)
				} else {
					r.Name, r.Label = cs.Name(), cs.Label()
				}
				results = append(results, r)
			}

			if a.json() {
				if err := writeJSON(c.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, r := range results {
					if r.Error != "" {
						fmt.Fprintf(c.ErrOrStderr(), "%s\n", shortError(r.Input))
						continue
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, r.Name, r.Label)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			if failed > 0 {
				return errUnresolved
			}
			return nil
		},
	}
}

// shortError omits the list of valid spellings; --format json carries it.
func shortError(input string) string {
	return fmt.Sprintf("%s: %q", charsets.CodeInvalidName, input)
}
