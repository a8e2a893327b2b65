package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cottand/zed/internal/log"
	"github.com/cottand/zed/zed"
	"github.com/spf13/cobra"
)

// programFlags are the flags shared by every command that reads programs
type programFlags struct {
	configPath *string
	logLevel   *string
	arity      *string
}

func addProgramFlags(cmd *cobra.Command) *programFlags {
	return &programFlags{
		configPath: cmd.Flags().StringP("config", "c", "", "path to a "+zed.ConfigFileName+" file, searched for from the target's folder when empty"),
		logLevel:   cmd.Flags().StringP("log-level", "l", "", "log level (debug, info, warn or error), overrides the config file"),
		arity:      cmd.Flags().String("arity", "", "arity policy (strict or lenient), overrides the config file"),
	}
}

// load returns the configuration for target and applies its logging settings
func (f *programFlags) load(target string) (zed.Config, error) {
	var cfg zed.Config
	var found string
	var err error
	if *f.configPath != "" {
		cfg, err = zed.LoadConfig(*f.configPath)
	} else {
		dir := target
		if stat, statErr := os.Stat(target); statErr != nil || !stat.IsDir() {
			dir = filepath.Dir(target)
		}
		found, cfg, err = zed.FindConfig(dir)
	}
	if err != nil {
		return zed.Config{}, fmt.Errorf("could not load config: %w", err)
	}

	if *f.logLevel != "" {
		cfg.Log.Level = *f.logLevel
	}
	if *f.arity != "" {
		if err := cfg.Arity.UnmarshalText([]byte(*f.arity)); err != nil {
			return zed.Config{}, err
		}
	}
	if err := cfg.ApplyLogging(); err != nil {
		return zed.Config{}, err
	}
	if found != "" {
		log.DefaultLogger.With("section", "program").Debug("using config file", "path", found)
	}
	return cfg, nil
}

// loadProgram reads the file at target into a program
func loadProgram(target string, cfg zed.Config) (*zed.Program, error) {
	target, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute path of target: %w", err)
	}
	p, err := zed.LoadProgram(os.DirFS(filepath.Dir(target)), filepath.Base(target), cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read program: %w", err)
	}
	return p, nil
}
