package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/embias/bias"
)

var auditTopK int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Identify the bias direction and report projection scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		store, err := loadStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		logger.Info("store loaded",
			zap.Int("words", store.Len()),
			zap.Int("dim", store.Dim()))

		dir, err := bias.Identify(store,
			cfg.Direction.PositiveEnd, cfg.Direction.NegativeEnd,
			cfg.Pairs(), cfg.Direction.Method)
		if err != nil {
			return err
		}
		logger.Info("direction identified",
			zap.String("method", cfg.Direction.Method),
			zap.String("positive", dir.PositiveEnd),
			zap.String("negative", dir.NegativeEnd))

		neutral := cfg.Debias.NeutralWords
		if neutral == nil {
			neutral = bias.ExtractNeutralWords(store, cfg.Debias.SpecificWords)
		}
		direct, err := bias.DirectBias(store, dir, neutral, 1)
		if err != nil {
			return err
		}
		fmt.Printf("direct bias over %d neutral words: %.6f\n", len(neutral), direct)

		scores, err := bias.ProjectionScores(store, dir, neutral)
		if err != nil {
			return err
		}
		k := auditTopK
		if k > len(scores) {
			k = len(scores)
		}
		fmt.Printf("\nmost %s-leaning:\n", dir.PositiveEnd)
		for _, s := range scores[:k] {
			fmt.Printf("  %-24s %+.4f\n", s.Word, s.Projection)
		}
		fmt.Printf("\nmost %s-leaning:\n", dir.NegativeEnd)
		for _, s := range scores[len(scores)-k:] {
			fmt.Printf("  %-24s %+.4f\n", s.Word, s.Projection)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVar(&auditTopK, "top", 10, "words to show per direction end")
}
