package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/embias/bias"
	"github.com/viant/embias/embedding"
)

var debiasCmd = &cobra.Command{
	Use:   "debias",
	Short: "Debias the embedding store and write the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cfg.Debias.Output == "" {
			return fmt.Errorf("debias.output is required")
		}
		store, err := loadStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		dir, err := bias.Identify(store,
			cfg.Direction.PositiveEnd, cfg.Direction.NegativeEnd,
			cfg.Pairs(), cfg.Direction.Method)
		if err != nil {
			return err
		}

		equalitySets := cfg.Debias.EqualitySets
		// Drop sets with out-of-vocabulary members instead of failing the run.
		kept := equalitySets[:0:0]
		for _, set := range equalitySets {
			complete := true
			for _, word := range set {
				if !store.Contains(word) {
					complete = false
					break
				}
			}
			if complete {
				kept = append(kept, set)
			}
		}
		logger.Debug("equality sets filtered",
			zap.Int("kept", len(kept)), zap.Int("given", len(equalitySets)))

		var progress bias.ProgressReporter
		if bias.DefaultProgressEnabled() {
			progress = bias.NewBarReporter("neutralizing")
		}
		debiased, err := bias.Debias(store, dir, bias.Options{
			Method:        cfg.Debias.Method,
			NeutralWords:  cfg.Debias.NeutralWords,
			SpecificWords: cfg.Debias.SpecificWords,
			EqualitySets:  kept,
			SoftStrength:  cfg.Debias.SoftStrength,
			Inplace:       true,
			Progress:      progress,
		})
		if err != nil {
			return err
		}
		logger.Info("debias complete", zap.String("method", cfg.Debias.Method))

		out, err := os.Create(cfg.Debias.Output)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := embedding.WriteText(out, debiased); err != nil {
			return err
		}
		logger.Info("debiased store written", zap.String("output", cfg.Debias.Output))
		return nil
	},
}
