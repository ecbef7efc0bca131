package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/memora-labs/memora/internal/engine"
	"github.com/memora-labs/memora/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "memora",
	Short: "Mastery and review scheduling engine",
	Long:  "Memora — tracks per-item mastery from quiz history, schedules spaced reviews and triggers adaptive quiz regeneration.",
}

func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEMORA_DB env var)")
	rootCmd.PersistentFlags().String("driver", "sqlite", "Database driver: sqlite or postgres")
	rootCmd.PersistentFlags().String("config", "", "Path to engine config file (overrides MEMORA_CONFIG env var)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the JSON logger all commands share.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// openStore opens the database selected by flags and environment. For
// sqlite the DSN resolves --db, then MEMORA_DB, then the default XDG
// path; for postgres the DSN comes from MEMORA_DSN.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, _ := cmd.Flags().GetString("driver")
	switch driver {
	case "sqlite":
		dsn, err := resolveDBPath(cmd)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		return store.Open(driver, dsn)
	case "postgres":
		dsn := os.Getenv("MEMORA_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("MEMORA_DSN is required for the postgres driver")
		}
		return store.Open(driver, dsn)
	default:
		return nil, fmt.Errorf("unknown driver: %q", driver)
	}
}

func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig builds the engine configuration: defaults, then the config
// file if one is given, then MEMORA_* environment overrides.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("MEMORA_CONFIG")
	}

	cfg := engine.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = engine.LoadFile(path)
		if err != nil {
			return engine.Config{}, err
		}
	}

	cfg = cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}
