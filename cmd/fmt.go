package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var FmtCmd = &cobra.Command{
	Use:          "fmt file.zed",
	Short:        "Print a zed program in its canonical form",
	RunE:         runFmt,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	fmtFlags *programFlags
	fmtWrite *bool
)

func init() {
	fmtFlags = addProgramFlags(FmtCmd)
	fmtWrite = FmtCmd.Flags().BoolP("write", "w", false, "write the result back to the file instead of printing it")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := fmtFlags.load(args[0])
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
	formatted, err := p.Format()
	if err != nil {
		return err
	}

	if !*fmtWrite {
		_, err = fmt.Fprint(cmd.OutOrStdout(), formatted)
		return err
	}
	stat, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	return os.WriteFile(args[0], []byte(formatted), stat.Mode())
}
