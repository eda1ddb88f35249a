// Package main provides the treectl CLI, which builds the trees of go-trees
// from flags or YAML files and prints their shape and query results.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/g-m-twostay/go-trees/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	cfgFile  string
	logLevel string
	style    string

	cfg *config.Config
	log *zap.Logger
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treectl",
		Short: "Build and query AVL, interval, prefix and Fenwick trees",
		Long: `treectl builds the trees of go-trees from flags or YAML input files
and prints their shape, traversals and query results.

Commands:
  avl       AVL tree (or unbalanced BST) over integer keys
  interval  interval tree with overlap queries
  trie      prefix trie
  fenwick   binary indexed tree prefix sums`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return a.setup() },
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.treectl.yaml or $HOME/.treectl.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")
	rootCmd.PersistentFlags().StringVar(&a.style, "style", "", "override output.style")

	rootCmd.AddCommand(avlCmd(a))
	rootCmd.AddCommand(intervalCmd(a))
	rootCmd.AddCommand(trieCmd(a))
	rootCmd.AddCommand(fenwickCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup loads the configuration, applies the flag overrides and builds the
// logger.
func (a *app) setup() error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.style != "" {
		cfg.Output.Style = a.style
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "validate flags")
	}
	lvl, _ := cfg.Log.ZapLevel()
	if a.log, err = newLogger(lvl); err != nil {
		return errors.Wrap(err, "build logger")
	}
	a.cfg = cfg
	return nil
}

// newLogger builds a console logger writing to stderr at lvl.
func newLogger(lvl zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = lvl > zapcore.DebugLevel
	return zc.Build()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treectl %s\n", version)
		},
	}
}
