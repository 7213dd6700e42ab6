package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/tardis/recording"
	"github.com/sarchlab/tardis/topology"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [database.sqlite3]",
	Short: "Print the nodes and channels of a recorded fabric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		reader := recording.NewReader(args[0])
		defer reader.Close()

		ctx := context.Background()
		topo := recording.NewTopologyReader(reader)

		nodes, err := topo.Nodes(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, n := range nodes {
			fmt.Fprintf(w, "%3d  %-24s %-9s v%-3d router %d\n",
				n.ID, n.Name, n.Kind, n.Version, n.Router)

			channels, err := topo.ChannelsOf(ctx, n.Name)
			if err != nil {
				return err
			}

			for _, ch := range channels {
				fmt.Fprintf(w, "       %-20s %-9s vnet %2d -> %s\n",
					ch.Name, ch.Role, ch.VirtualNetwork, ch.Peer)
			}
		}

		return nil
	},
}

var topologiesCmd = &cobra.Command{
	Use:   "topologies",
	Short: "List the available topologies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range topology.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(topologiesCmd)
}
