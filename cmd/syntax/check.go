package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/syntax/internal/adapters/cli"
	"github.com/3-lines-studio/syntax/internal/navigation"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every page converts and every navigation link has a page",
	RunE: func(cmd *cobra.Command, args []string) error {
		output := cli.NewOutput()
		output.PrintHeader("Syntax Check")

		site, err := newSite()
		if err != nil {
			output.PrintError("%v", err)
			return err
		}
		output.PrintSuccess("%d pages convert", len(site.Routes()))

		missing := missingPages(navigation.Default(), site.Routes())
		for _, l := range missing {
			output.PrintError("%s (%s) has no page", l.Href, l.Title)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d navigation links have no page", len(missing))
		}

		output.PrintSuccess("%d navigation links resolve", len(navigation.Default().Links()))
		return nil
	},
}

func missingPages(nav navigation.Tree, routes []string) []navigation.Link {
	have := make(map[string]bool, len(routes))
	for _, r := range routes {
		have[r] = true
	}

	var missing []navigation.Link
	for _, l := range nav.Links() {
		if !have[l.Href] {
			missing = append(missing, l)
		}
	}
	return missing
}
