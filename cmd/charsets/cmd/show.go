package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show every spelling of one character set",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cs, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			v := viewOf(cs, true)
			if a.json() {
				return writeJSON(c.OutOrStdout(), v)
			}
			w := c.OutOrStdout()
			fmt.Fprintf(w, "name:       %s\n", v.Name)
			if v.MIME != "" {
				fmt.Fprintf(w, "mime:       %s\n", v.MIME)
			}
			fmt.Fprintf(w, "aliases:    %s\n", strings.Join(v.Aliases, ", "))
			fmt.Fprintf(w, "match keys: %s\n", strings.Join(v.MatchKeys, ", "))
			return nil
		},
	}
}
