package zed

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cottand/zed/backend"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/frontend/types"
	"github.com/cottand/zed/internal/log"
)

// ConfigFileName is the name of the file FindConfig looks for
const ConfigFileName = "zed.toml"

// Config represents a zed.toml file
type Config struct {
	// Entry is the function a program starts from
	Entry string `toml:"entry"`
	// Arity is the policy for calls with the wrong number of arguments, strict or lenient
	Arity           ilerr.ArityPolicy `toml:"arity"`
	MaxResolveDepth int               `toml:"max-resolve-depth"`
	MaxCallDepth    int               `toml:"max-call-depth"`
	Log             LogConfig         `toml:"log"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `toml:"level"`
	// Sections whose debug and info records are shown
	Sections []string `toml:"sections"`
}

func DefaultConfig() Config {
	return Config{
		Entry:           "main",
		Arity:           ilerr.ArityStrict,
		MaxResolveDepth: types.DefaultMaxResolveDepth,
		MaxCallDepth:    backend.DefaultMaxCallDepth,
	}
}

// LoadConfig reads the file at path over DefaultConfig.
// Keys that are not part of Config are an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a zed.toml document from r over DefaultConfig
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Entry == "" {
		return fmt.Errorf("entry must not be empty")
	}
	if c.MaxResolveDepth <= 0 {
		return fmt.Errorf("max-resolve-depth must be positive, got %d", c.MaxResolveDepth)
	}
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max-call-depth must be positive, got %d", c.MaxCallDepth)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	return nil
}

// FindConfig searches for a zed.toml file starting from dir and walking up to parent
// directories, stopping at a .git boundary. It returns the path of the file and its
// contents, or an empty path and DefaultConfig if there is none.
func FindConfig(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", Config{}, err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadConfig(path)
			if err != nil {
				return "", Config{}, err
			}
			return path, cfg, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", DefaultConfig(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", DefaultConfig(), nil
		}
		dir = parent
	}
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// ApplyLogging sets the level and the enabled sections of the loggers of every package
func (c Config) ApplyLogging() error {
	level, err := c.Log.level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if len(c.Log.Sections) > 0 {
		log.EnableSections(c.Log.Sections...)
	}
	return nil
}

// Settings returns the inference settings c describes
func (c Config) Settings() types.Settings {
	return types.Settings{
		Arity:           c.Arity,
		MaxResolveDepth: c.MaxResolveDepth,
	}
}

// Interpreter returns an interpreter configured like c, printing to stdout
func (c Config) Interpreter(stdout io.Writer) *backend.Interpreter {
	in := backend.NewInterpreter(stdout)
	in.Arity = c.Arity
	in.MaxCallDepth = c.MaxCallDepth
	return in
}
