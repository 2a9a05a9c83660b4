package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/strtable"
)

func newStringsCmd(a *app) *cobra.Command {
	var withType bool
	cmd := &cobra.Command{
		Use:   "strings FILE",
		Short: "Dump the string table as key<TAB>value lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			g.StrTable().Range(func(k strtable.Key, s string, typ strtable.StrType) bool {
				if withType {
					fmt.Fprintf(out, "%d\t%s\t%s\n", k, typ, strconv.Quote(s))
				} else {
					fmt.Fprintf(out, "%d\t%s\n", k, strconv.Quote(s))
				}
				return true
			})

			return nil
		},
	}
	cmd.Flags().BoolVar(&withType, "types", false, "include the persistence tag of each entry")

	return cmd
}
