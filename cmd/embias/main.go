package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viant/embias/embedding"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "embias",
	Short: "Audit and mitigate linear bias directions in word embeddings",
	Long: `embias identifies a bias direction (e.g. gender) in a word-embedding
space from definitional word pairs, measures direct and indirect bias along
it, applies neutralize/equalize/soft debiasing, and expands a seed set of
bias-specific words over the full vocabulary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(debiasCmd)
	rootCmd.AddCommand(learnCmd)
}

// loadStore opens the embedding store named by the config, preferring the
// SQLite source when both are set.
func loadStore(ctx context.Context, cfg *Config) (*embedding.MemoryStore, error) {
	switch {
	case cfg.Embedding.SQLite != "":
		db, err := embedding.Open(cfg.Embedding.SQLite)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		logger.Debug("loading embeddings", zap.String("sqlite", cfg.Embedding.SQLite))
		return embedding.LoadStore(ctx, db)
	case cfg.Embedding.Path != "":
		f, err := os.Open(cfg.Embedding.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		logger.Debug("loading embeddings", zap.String("path", cfg.Embedding.Path))
		return embedding.ReadText(f)
	default:
		return nil, fmt.Errorf("no embedding source configured; set embedding.path or embedding.sqlite")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
