package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keycell/internal/paths"
	"github.com/mesh-intelligence/keycell/internal/tracedb"
)

func newTraceCmd() *cobra.Command {
	trace := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded demo runs",
	}
	trace.AddCommand(newTraceListCmd())
	return trace
}

func newTraceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded demo operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return err
			}
			v, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
			if err != nil {
				return err
			}

			store, err := tracedb.Open(tracedb.Config{DataDir: dataDir})
			if err != nil {
				return fmt.Errorf("open trace store: %w", err)
			}
			defer store.Close()

			runs, err := store.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no recorded runs")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %-8s %s\n", r.CreatedAt.Format(time.RFC3339), r.Op, r.Detail)
			}
			return nil
		},
	}
}
