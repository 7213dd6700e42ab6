package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/tardis/config"
	"github.com/sarchlab/tardis/monitoring"
	"github.com/sarchlab/tardis/recording"
	"github.com/sarchlab/tardis/tardis"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the fabric and print its topology",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		opts, err := loadOptions(cmd.Flags(), configPath)
		if err != nil {
			return err
		}

		return runAssemble(cmd, opts)
	},
}

func init() {
	addOptionFlags(assembleCmd.Flags())

	assembleCmd.Flags().Bool("verbose", false, "log every assembly step to stderr")
	assembleCmd.Flags().String("record", "",
		"record the topology into the given SQLite database (without suffix)")
	assembleCmd.Flags().Bool("monitor", false, "serve the assembled fabric over HTTP")
	assembleCmd.Flags().Int("port", 0, "port of the monitoring server, random if 0")
	assembleCmd.Flags().Bool("open", false, "open the monitoring page in a browser")

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, opts config.Options) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	recordPath, _ := flags.GetString("record")
	monitor, _ := flags.GetBool("monitor")
	port, _ := flags.GetInt("port")
	open, _ := flags.GetBool("open")

	assembler := tardis.MakeBuilder().
		WithOptions(opts).
		WithDMASources(dmaSources(opts.NumDMAs)).
		Build("Ruby")

	if verbose {
		logger := tardis.NewAssemblyLogger(log.New(os.Stderr, "", log.Lmicroseconds))
		assembler.AcceptHook(logger)
		assembler.Network().AcceptHook(logger)
	}

	var exec *recording.ExecRecorder

	if cmd.Flags().Changed("record") {
		recorder := recording.New(recordPath)
		exec = recording.NewExecRecorder(recorder)
		exec.Start()
		assembler.AcceptHook(recording.NewTopologyRecorder(recorder))
	}

	sys, err := assembler.Assemble()
	if err != nil {
		return err
	}

	if exec != nil {
		exec.Add("Assembly", sys.ID)
		exec.End()
	}

	printSystem(cmd.OutOrStdout(), sys, opts)

	if !monitor {
		return nil
	}

	m := monitoring.NewMonitor().WithPortNumber(port)
	m.RegisterSystem(sys)
	url := m.StartServer()

	if open {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	<-ctx.Done()
	m.StopServer()

	return nil
}

func printSystem(w io.Writer, sys *tardis.System, opts config.Options) {
	topo := sys.Topology
	memSize := config.MustParseSize(opts.MemSize)

	fmt.Fprintf(w, "Assembly %s\n", sys.ID)
	fmt.Fprintf(w, "Topology %s, %d nodes, %d routers, %d virtual networks\n",
		topo.Name(), topo.NumNodes(), len(topo.Routers()),
		topo.NumVirtualNetworks())
	fmt.Fprintf(w, "Memory %s over %d directories, controllers at %s\n",
		humanize.IBytes(memSize), len(sys.Directories),
		sys.MemCtrlClkDomain.Freq())

	for id, node := range topo.Nodes() {
		fmt.Fprintf(w, "  %3d  %-24s %-9s v%-3d %2d channels\n",
			id, node.Name(), node.Kind(), node.Version(), len(node.Channels()))
	}

	if len(sys.L1Caches) > 0 {
		l1 := sys.L1Caches[0]
		fmt.Fprintf(w, "L1: %s, %s, %s lines\n",
			l1.L1ICache, l1.L1DCache,
			humanize.IBytes(l1.L1DCache.BlockSize()))
	}
}
