//go:build !(js || wasm)

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/cottand/zed/cmd"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	)
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "zed [subcommand]",
	Short:        "zed, a tiny functional language with inferred types",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.RunCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.FmtCmd)
	rootCmd.AddCommand(cmd.AstCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
}
