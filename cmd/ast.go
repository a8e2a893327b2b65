package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var AstCmd = &cobra.Command{
	Use:          "ast file.zed",
	Short:        "Print the syntax tree of a zed program",
	RunE:         runAst,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	astFlags *programFlags
	astSpew  *bool
)

// astDumper prints every field of the tree, pointers included
var astDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func init() {
	astFlags = addProgramFlags(AstCmd)
	astSpew = AstCmd.Flags().Bool("spew", false, "dump the tree with field types instead of as Go syntax")
}

func runAst(cmd *cobra.Command, args []string) error {
	cfg, err := astFlags.load(args[0])
	if err != nil {
		return err
	}
	p, err := loadProgram(args[0], cfg)
	if err != nil {
		return err
	}
	if !p.Parsed() {
		return fmt.Errorf("errors found while parsing:\n%s", p.FormatErrors(p.Errors()))
	}
	if *astSpew {
		astDumper.Fdump(cmd.OutOrStdout(), p.Syntax())
		return nil
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(p.Syntax()))
	return err
}
