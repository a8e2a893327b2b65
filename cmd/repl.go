package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cottand/zed/zed"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".zed_history"
	promptMain  = "zed> "
	promptCont  = "...  "
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate zed declarations and expressions interactively",
	Long: `Evaluate zed declarations and expressions interactively.

Lines starting with fn declare functions, any other line is evaluated as an expression.
Commands:
  :types  show the types of the declared functions
  :reset  forget every declaration
  :quit   exit`,
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var replFlags *programFlags

func init() {
	replFlags = addProgramFlags(ReplCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := replFlags.load(cwd)
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	session := zed.NewSession(cfg, out)
	for {
		input, ok := readInput(ln)
		if !ok {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if strings.HasPrefix(input, ":") {
			if quit := replCommand(session, out, input); quit {
				return nil
			}
			continue
		}

		shown, err := session.Input(input)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		_, _ = fmt.Fprintln(out, shown)
	}
}

func replCommand(session *zed.Session, out io.Writer, command string) (quit bool) {
	switch strings.ToLower(command) {
	case ":quit", ":q":
		return true
	case ":reset":
		session.Reset()
	case ":types":
		types, err := session.Types()
		if err != nil {
			_, _ = fmt.Fprintln(out, err)
			break
		}
		_, _ = fmt.Fprint(out, types)
	default:
		_, _ = fmt.Fprintln(out, "unknown command, expected one of :types, :reset or :quit")
	}
	return false
}

// readInput reads lines until brackets are balanced
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// ctrl-c drops what was typed so far
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !zed.Incomplete(b.String()) {
			return b.String(), true
		}
	}
}
