package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/embias/bias"
)

// Config holds the CLI configuration. Every section has a usable default so
// a bare embedding path is enough to run the gender audit.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Direction DirectionConfig `yaml:"direction,omitempty"`
	Debias    DebiasConfig    `yaml:"debias,omitempty"`
	Learn     LearnConfig     `yaml:"learn,omitempty"`
}

// EmbeddingConfig locates the embedding store.
type EmbeddingConfig struct {
	// Path to a word2vec text file.
	Path string `yaml:"path,omitempty"`
	// SQLite database path, used instead of Path when set.
	SQLite string `yaml:"sqlite,omitempty"`
}

// DirectionConfig describes the bias axis to identify.
type DirectionConfig struct {
	PositiveEnd string `yaml:"positive_end,omitempty"`
	NegativeEnd string `yaml:"negative_end,omitempty"`
	// Method is one of single, sum, pca.
	Method string `yaml:"method,omitempty"`
	// DefinitionalPairs are two-element word lists, e.g. [[woman, man]].
	DefinitionalPairs [][]string `yaml:"definitional_pairs,omitempty"`
}

// DebiasConfig configures the debias subcommand.
type DebiasConfig struct {
	// Method is one of neutralize, hard, soft.
	Method        string     `yaml:"method,omitempty"`
	NeutralWords  []string   `yaml:"neutral_words,omitempty"`
	SpecificWords []string   `yaml:"specific_words,omitempty"`
	EqualitySets  [][]string `yaml:"equality_sets,omitempty"`
	SoftStrength  float64    `yaml:"soft_strength,omitempty"`
	// Output is the word2vec text file the debiased store is written to.
	Output string `yaml:"output,omitempty"`
}

// LearnConfig configures the learn subcommand.
type LearnConfig struct {
	Seeds          []string `yaml:"seeds,omitempty"`
	MaxNonSpecific int      `yaml:"max_non_specific,omitempty"`
}

// LoadConfig reads a YAML config file and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Direction.PositiveEnd == "" {
		c.Direction.PositiveEnd = bias.DefaultPositiveEnd
	}
	if c.Direction.NegativeEnd == "" {
		c.Direction.NegativeEnd = bias.DefaultNegativeEnd
	}
	if c.Direction.Method == "" {
		c.Direction.Method = bias.MethodPCA
	}
	if c.Debias.Method == "" {
		c.Debias.Method = bias.DebiasHard
	}
	if len(c.Debias.EqualitySets) == 0 {
		c.Debias.EqualitySets = bias.DefaultEqualitySets
	}
	if len(c.Debias.SpecificWords) == 0 {
		c.Debias.SpecificWords = bias.DefaultSeedSpecificWords
	}
	if len(c.Learn.Seeds) == 0 {
		c.Learn.Seeds = bias.DefaultSeedSpecificWords
	}
}

func (c *Config) validate() error {
	for _, pair := range c.Direction.DefinitionalPairs {
		if len(pair) != 2 {
			return fmt.Errorf("config: definitional pair %v must have exactly 2 words", pair)
		}
	}
	return nil
}

// Pairs converts the configured definitional pairs, defaulting to the gender
// lexicon when none are given.
func (c *Config) Pairs() []bias.Pair {
	if len(c.Direction.DefinitionalPairs) == 0 {
		return bias.DefaultDefinitionalPairs
	}
	pairs := make([]bias.Pair, 0, len(c.Direction.DefinitionalPairs))
	for _, p := range c.Direction.DefinitionalPairs {
		pairs = append(pairs, bias.Pair{First: p[0], Second: p[1]})
	}
	return pairs
}
