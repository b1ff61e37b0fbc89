package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/charsets"
	"github.com/reoring/charsets/table"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a custom table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entries, err := table.ReadFile(args[0], table.FormatAuto)
			if err != nil {
				return err
			}
			reg, err := charsets.NewRegistry(entries)
			if err != nil {
				if iss, ok := charsets.AsIssues(err); ok && !a.json() {
					for _, it := range iss {
						fmt.Fprintf(c.ErrOrStderr(), "%s: %s at %s: %s\n", args[0], it.Code, it.Path, it.Message)
					}
				} else if ok {
					_ = writeJSON(c.OutOrStdout(), iss)
				}
				return fmt.Errorf("%s: invalid table", args[0])
			}
			a.log.Debug("table ok", "path", args[0], "records", reg.Len())
			if a.json() {
				return writeJSON(c.OutOrStdout(), map[string]int{"records": reg.Len(), "match_keys": len(reg.MatchKeys())})
			}
			fmt.Fprintf(c.OutOrStdout(), "%s: %d records, %d match keys\n", args[0], reg.Len(), len(reg.MatchKeys()))
			return nil
		},
	}
}
