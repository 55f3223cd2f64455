package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/RichardKnop/sqlrite/internal/config"
	"github.com/RichardKnop/sqlrite/internal/history"
	"github.com/RichardKnop/sqlrite/internal/meta"
	"github.com/RichardKnop/sqlrite/internal/pkg/logging"
	"github.com/RichardKnop/sqlrite/internal/repl"
	"github.com/RichardKnop/sqlrite/internal/sqlcmd"
	"github.com/RichardKnop/sqlrite/internal/store"
)

const cliName = "sqlrite"

// errAlreadyReported marks failures the shell has printed itself.
var errAlreadyReported = errors.New("already reported")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           cliName + " [DATABASE]",
		Short:         "Interactive SQL shell",
		Long:          `sqlrite reads SQL statements and dot commands from the terminal and runs them against SQLite, Postgres or a remote minisql server.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return runShell(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/sqlrite/config.yaml)")
	flags.String("history", "", "history file (default $XDG_STATE_HOME/sqlrite/history)")
	flags.String("database", "", "database to open: a file path, :memory:, postgres://... or minisql://host:port")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig applies the config file and then any flags that were set
// explicitly. A positional database argument wins over --database.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	for name, value := range map[string]*string{
		"history":   &cfg.HistoryFile,
		"database":  &cfg.Database,
		"log-level": &cfg.LogLevel,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *value, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}
	if len(args) == 1 {
		cfg.Database = args[0]
	}
	if flags.Changed("no-color") {
		if cfg.NoColor, err = flags.GetBool("no-color"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runShell(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() // nolint:errcheck

	if cfg.NoColor {
		pterm.DisableColor()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aManager := store.NewManager(logger)
	defer func() {
		if err := aManager.Close(); err != nil {
			logger.Warn("error closing database", zap.Error(err))
		}
	}()

	name, err := aManager.Switch(ctx, cfg.Database)
	if err != nil {
		return err
	}

	var (
		interactive = term.IsTerminal(int(os.Stdin.Fd()))
		reader      repl.LineReader
		options     []repl.SessionOption
	)
	if interactive {
		rl, err := repl.NewReadlineReader()
		if err != nil {
			return err
		}
		reader = rl
		options = append(options, repl.WithPrompts(repl.DefaultPrompts()))
	} else {
		reader = repl.NewScannerReader(os.Stdin, io.Discard)
		options = append(options, repl.WithPrompts(repl.PlainPrompts()), repl.WithQuiet())
	}
	defer reader.Close()

	logger.Debug("starting shell",
		zap.Bool("interactive", interactive),
		zap.String("history", cfg.HistoryFile),
	)

	aSession := repl.NewSession(
		logger,
		reader,
		meta.New(logger, aManager),
		sqlcmd.New(logger, aManager),
		history.New(cfg.HistoryFile),
		options...,
	)

	if interactive {
		repl.NewPrinter(os.Stdout, os.Stderr).Banner(cliName, Version, name)
	}
	aSession.LoadHistory()

	if err := aSession.Run(ctx); err != nil {
		logger.Debug("session ended with error", zap.Error(err))
		return errAlreadyReported
	}
	return nil
}
