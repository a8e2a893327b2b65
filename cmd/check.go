package cmd

import (
	"fmt"
	"strings"

	"github.com/cottand/zed/zed"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.zed...",
	Short:        "Infer the types of zed programs and report their errors",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	checkFlags    *programFlags
	checkWarnings *bool
)

func init() {
	checkFlags = addProgramFlags(CheckCmd)
	checkWarnings = CheckCmd.Flags().BoolP("warnings", "w", false, "also report types that could not be fully inferred")
}

// checkReport is the outcome of checking one file
type checkReport struct {
	out    string
	failed bool
}

func check(p *zed.Program, warnings bool) checkReport {
	sb := &strings.Builder{}
	sb.WriteString("== ")
	sb.WriteString(p.Name())
	sb.WriteString("\n")

	errs := p.Errors()
	sb.WriteString(p.FormatErrors(errs))
	if warnings {
		sb.WriteString(p.FormatErrors(p.Warnings()))
	}
	if types, err := p.DisplayTypes(); err == nil {
		sb.WriteString(types)
	}
	return checkReport{out: sb.String(), failed: errs.HasError()}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := checkFlags.load(args[0])
	if err != nil {
		return err
	}

	reports := make([]checkReport, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, target := range args {
		g.Go(func() error {
			p, err := loadProgram(target, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", target, err)
			}
			reports[i] = check(p, *checkWarnings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, report := range reports {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), report.out)
		if report.failed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) have errors", failed, len(args))
	}
	return nil
}
