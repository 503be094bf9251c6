package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cryptonstudio/avlset/script"
)

// app holds dependencies shared by the commands.
type app struct {
	cfg    *Config
	fs     afero.Fs
	stdin  io.Reader
	logger *zap.Logger // built from cfg unless set
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a := &app{
		cfg:   cfg,
		fs:    afero.NewOsFs(),
		stdin: os.Stdin,
	}
	if err := a.newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "avlset",
		Short:        "Ordered multiset on top of an AVL tree",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := newLogger(a.cfg)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&a.cfg.LogDev, "log-dev", a.cfg.LogDev, "Use human readable development logger")
	flags.BoolVar(&a.cfg.Validate, "validate", a.cfg.Validate, "Validate the tree structure after every mutation")
	flags.BoolVar(&a.cfg.Pooled, "pooled", a.cfg.Pooled, "Reuse tree nodes through sync.Pool")

	root.AddCommand(a.newRunCommand(), a.newDemoCommand(), a.newBenchCommand())
	return root
}

func (a *app) newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script|->",
		Short: "Run operations script against a fresh tree",
		Long: `Run reads a text script (one "<op> [values...]" per line) or a YAML script
(.yaml/.yml files) and applies it to an empty tree. Use "-" to read a text script from stdin.
Operations: add, remove, contains, count, list, print, check, stats, clear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScript(cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&a.cfg.KeyType, "type", "t", a.cfg.KeyType, "Key type: int, uint, float, string, uint128")
	return cmd
}

func (a *app) runScript(cmd *cobra.Command, path string) error {
	var (
		s   *script.Script
		err error
	)
	if path == "-" {
		s, err = script.Parse(a.stdin)
	} else {
		s, err = script.Load(a.fs, path)
	}
	if err != nil {
		return err
	}

	// Explicit flag wins over the script directive which wins over the environment
	keyTypeName := a.cfg.KeyType
	if s.Type != "" && !cmd.Flags().Changed("type") {
		keyTypeName = string(s.Type)
	}
	keyType, err := script.ParseKeyType(keyTypeName)
	if err != nil {
		return err
	}

	printer := NewPrinter(cmd.OutOrStdout())
	runner, err := script.NewRunner(keyType, printer,
		script.WithLogger(a.logger.With(zap.String("script", path))),
		script.WithValidation(a.cfg.Validate),
		script.WithPool(a.cfg.Pooled),
	)
	if err != nil {
		return err
	}

	a.logger.Info("running script",
		zap.String("path", path),
		zap.String("type", string(keyType)),
		zap.Int("ops", len(s.Ops)),
	)
	timeStart := time.Now()
	err = runner.Run(cmd.Context(), s.Ops)
	timeElapsed := time.Since(timeStart)
	if err != nil {
		a.logger.Error("script failed", zap.Error(err))
		return errors.Wrapf(err, "run %s", path)
	}

	stats := runner.Stats()
	a.logger.Info("script finished",
		zap.Int("count", stats.Count),
		zap.Int("height", stats.Height),
		zap.Duration("elapsed", timeElapsed),
	)
	fmt.Fprintln(cmd.OutOrStdout())
	printer.PrintStatistics(timeElapsed)
	return nil
}
