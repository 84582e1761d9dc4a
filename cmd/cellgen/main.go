// Package main provides the cellgen CLI, which generates a cell-family
// source file: a {owner type, cell type, brand marker} triple wrapping
// the keycell family machinery.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keycell/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		pkgName string
		family  string
		outPath string
	)

	root := &cobra.Command{
		Use:   "cellgen",
		Short: "Generate a keycell family (owner + cell + brand marker)",
		Long: `Cellgen emits a Go source file declaring a new cell family. Each
generated family carries its own unexported marker type, so families are
mutually incompatible even when generated from the same name.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := gen.Render(gen.Params{Package: pkgName, Family: family})
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	root.Flags().StringVar(&pkgName, "package", "", "package name for the generated file")
	root.Flags().StringVar(&family, "family", "", "exported family name (e.g. Demo)")
	root.Flags().StringVar(&outPath, "out", "", "output file path (default: stdout)")
	_ = root.MarkFlagRequired("package")
	_ = root.MarkFlagRequired("family")

	return root
}
