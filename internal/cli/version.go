package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keycell/pkg/keycell"
)

const modulePath = "github.com/mesh-intelligence/keycell"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the keycell version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "keycell v%s\nmodule: %s\n", keycell.Version, modulePath)
			return nil
		},
	}
}
