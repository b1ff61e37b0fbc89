package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	var aliases bool
	c := &cobra.Command{
		Use:   "list",
		Short: "List every character set of the active table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			views := make([]charsetView, 0, a.reg.Len())
			for _, cs := range a.reg.All() {
				views = append(views, viewOf(cs, aliases))
			}
			if a.json() {
				return writeJSON(c.OutOrStdout(), views)
			}
			tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, v := range views {
				if aliases {
					fmt.Fprintf(tw, "%s\t%s\t%v\n", v.Name, v.MIME, v.Aliases)
				} else {
					fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.MIME)
				}
			}
			return tw.Flush()
		},
	}
	c.Flags().BoolVar(&aliases, "aliases", false, "include aliases and match keys")
	return c
}
