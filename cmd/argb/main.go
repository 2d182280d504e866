// argb formats, parses and stores color property values.
//
// Usage:
//
//	argb format <a> <r> <g> <b>    - Print the canonical text of a color
//	argb format --empty            - Print the empty color
//	argb parse <text>              - Validate text and print its canonical form
//	argb get <name>                - Read a stored property
//	argb set <name> <text>         - Store a property
//	argb invalidate <name>         - Drop a stored property
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.argb/config.yaml, ./argb.yaml)
//	--verbose        - Debug logging to stderr
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/argb"
	asynchook "github.com/unkn0wn-root/argb/hooks/async"
	"github.com/unkn0wn-root/argb/internal/config"
	argbzap "github.com/unkn0wn-root/argb/log/zap"
	"github.com/unkn0wn-root/argb/sloghooks"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "argb",
	Short: "Format, parse and store ARGB color properties",
	Long: `argb converts color values to and from their canonical text form
and keeps named color properties in a configured store.

Text form:
  Empty
  ARGB ( <alpha> / <red> / <green> / <blue>)

Examples:
  argb format 255 10 20 30
  argb parse "argb(255/10/20/30)"
  argb set Background "ARGB ( 255 / 10 / 20 / 30)"
  argb get Background`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(invalidateCmd)
}

// env is what every command needs: config, logger and hooks.
type env struct {
	cfg   config.Config
	zl    *zap.Logger
	log   argb.Logger
	hooks argb.Hooks
	async *asynchook.Hooks
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	zl, err := newZap(cfg.Log)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, zl: zl, log: argbzap.ZapLogger{L: zl}, hooks: argb.NopHooks{}}
	if flagVerbose {
		sl := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		// the text is the user's own input; no need to redact it
		e.async = asynchook.New(sloghooks.New(sl, sloghooks.Options{Redact: func(s string) string { return s }}), 1, 64)
		e.hooks = e.async
	}
	return e, nil
}

func (e *env) close() {
	if e.async != nil {
		e.async.Close()
		if n := e.async.Dropped(); n > 0 {
			e.log.Warn("hook events dropped", argb.Fields{"count": n})
		}
	}
	_ = e.zl.Sync()
}

func newZap(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		lvl, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zc.Level = lvl
	}
	if flagVerbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}
