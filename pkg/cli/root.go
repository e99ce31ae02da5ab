package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/config"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/db"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/storage"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type rootOptions struct {
	configPath   string
	dataDir      string
	markerSuffix string
	logLevel     string
	inMemory     bool
	once         bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "toysql",
		Short: "Toy relational catalog shell",
		Long: "Reads CREATE TABLE, DROP TABLE, INSERT INTO and SELECT commands, one per line,\n" +
			"and keeps the table definitions in an in-memory catalog.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}

			session, err := openSession(cmd, cfg)
			if err != nil {
				return err
			}

			if opts.once {
				return runOnce(session, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
				return runInteractive(session, cfg, cmd.OutOrStdout())
			}
			return runLines(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", config.Path(), "Config file")
	rootCmd.Flags().StringVarP(&opts.dataDir, "data-dir", "d", "", "Directory for table marker files")
	rootCmd.Flags().StringVar(&opts.markerSuffix, "marker-suffix", "", "Suffix of table marker files")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.inMemory, "in-memory", false, "Do not write marker files")
	rootCmd.Flags().BoolVar(&opts.once, "once", false, "Read a single command, run it and exit")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveConfig applies precedence flag > env > file > default
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if cmd.Flags().Changed("marker-suffix") {
		cfg.MarkerSuffix = opts.markerSuffix
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("in-memory") {
		cfg.InMemory = opts.inMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openSession(cmd *cobra.Command, cfg *config.Config) (*db.DB, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var store storage.Storage
	if cfg.InMemory {
		store = storage.NewMemoryStorage()
	} else {
		store, err = storage.NewFileStorage(cfg.DataDir, cfg.MarkerSuffix)
		if err != nil {
			return nil, err
		}
	}

	session := db.New(db.WithStorage(store), db.WithLogger(logger))
	logger.Debug("session started", "session", session.ID(), "data_dir", cfg.DataDir, "in_memory", cfg.InMemory)

	return session, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "toysql version %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}
