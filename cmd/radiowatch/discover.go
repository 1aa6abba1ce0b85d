package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillsenselab/radiowatch/broadcastify"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <county-id>",
	Short: "List the active channels in a county",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		client, err := broadcastify.NewClient(cfg.Broadcastify)
		if err != nil {
			return err
		}

		groups, err := client.DiscoverGroups(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Fprintf(os.Stdout, "no active channels found for county %s\n", args[0])
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CHANNEL\tDESCRIPTION")
		for _, g := range groups {
			fmt.Fprintf(w, "%s\t%s\n", g.ID, g.Description)
		}
		return w.Flush()
	},
}
