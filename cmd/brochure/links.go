package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLinksCmd(build pipelineFactory, global *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "links <url>",
		Short: "Print the links the model considers relevant for a brochure",
		Long: `Links scrapes <url> and prints the links selected for a brochure, one per
line with the model's type label. Links the model proposed that were not on the
page are marked "(not on page)". With --all, every same-domain link found on
the page is printed instead and no model call is made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := build(*global)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if all {
				links, err := svc.DiscoverLinks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if links.Failed() {
					return fmt.Errorf("load %s: %w", links.BaseURL, links.Err)
				}
				for _, l := range links.Links {
					fmt.Fprintln(out, l)
				}
				return nil
			}

			links, selection, err := svc.SelectLinks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if links.Failed() {
				return fmt.Errorf("load %s: %w", links.BaseURL, links.Err)
			}
			if selection.Failed() {
				return fmt.Errorf("select links: %w", selection.Err)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range selection.Entries {
				fmt.Fprintf(tw, "%s\t%s", e.Type, e.URL)
				if e.Suspect {
					fmt.Fprint(tw, "\t(not on page)")
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print every discovered link without asking the model")
	return cmd
}
