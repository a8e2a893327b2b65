package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var RunCmd = &cobra.Command{
	Use:          "run file.zed",
	Short:        "Run a zed program from its entry function",
	RunE:         runRun,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	runFlags     *programFlags
	runShowTypes *bool
)

func init() {
	runFlags = addProgramFlags(RunCmd)
	runShowTypes = RunCmd.Flags().BoolP("types", "t", false, "print the inferred types of the program before running it")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := runFlags.load(args[0])
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

	if *runShowTypes {
		if errs := p.Errors(); errs.HasError() {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), p.FormatErrors(errs))
		}
		types, err := p.DisplayTypes()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), types)
	}

	value, err := p.Run(cmd.OutOrStdout())
	if err != nil {
		return errors.New(p.FormatError(err))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
