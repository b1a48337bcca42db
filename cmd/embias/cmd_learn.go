package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/embias/learner"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Expand the seed specific-word set over the full vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		store, err := loadStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		seeds := cfg.Learn.Seeds
		kept := seeds[:0:0]
		for _, seed := range seeds {
			if store.Contains(seed) {
				kept = append(kept, seed)
			}
		}
		logger.Info("learning specific words",
			zap.Int("seeds", len(kept)),
			zap.Int("vocabulary", store.Len()))

		result, err := learner.Learn(store, kept, learner.Options{
			MaxNonSpecific: cfg.Learn.MaxNonSpecific,
		})
		if err != nil {
			return err
		}
		logger.Info("classifier trained", zap.Int("specific", len(result.Words)))
		for _, word := range result.Words {
			fmt.Println(word)
		}
		return nil
	},
}
