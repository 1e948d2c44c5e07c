package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/game-result-mcp/internal/extract"
	"github.com/ironsheep/game-result-mcp/internal/ocr"
	"github.com/ironsheep/game-result-mcp/internal/roster"
)

// Config holds all server configuration.
type Config struct {
	Roster RosterConfig `mapstructure:"roster"`
	Bands  BandsConfig  `mapstructure:"bands"`
	OCR    OCRConfig    `mapstructure:"ocr"`
	Log    LogConfig    `mapstructure:"log"`
}

// RosterConfig holds the known player ids and the match threshold.
type RosterConfig struct {
	// Players is a list in config files; environment values are split on
	// commas, so ids may contain spaces.
	Players []string `mapstructure:"players"`
	Cutoff  float64  `mapstructure:"cutoff"`
}

// BandRange is the span of relative column positions scanned for one field.
type BandRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// BandsConfig holds the candidate column ranges of every field.
type BandsConfig struct {
	Ranking BandRange `mapstructure:"ranking"`
	Score   BandRange `mapstructure:"score"`
	Order   BandRange `mapstructure:"order"`
	Steps   int       `mapstructure:"steps"`
}

// OCRConfig holds Tesseract settings used when loading screenshots.
type OCRConfig struct {
	Language      string  `mapstructure:"language"`
	Upscale       float64 `mapstructure:"upscale"`
	Binarize      bool    `mapstructure:"binarize"`
	Threshold     int     `mapstructure:"threshold"`
	MinConfidence float64 `mapstructure:"min_confidence"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the GAMERESULT_
// prefix, layered over an optional file named by GAMERESULT_CONFIG_FILE.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GAMERESULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("roster.players", extract.DefaultPlayers)
	v.SetDefault("roster.cutoff", roster.DefaultCutoff)

	v.SetDefault("bands.ranking.min", 0.45)
	v.SetDefault("bands.ranking.max", 0.55)
	v.SetDefault("bands.score.min", 0.55)
	v.SetDefault("bands.score.max", 0.65)
	v.SetDefault("bands.order.min", 0.87)
	v.SetDefault("bands.order.max", 0.97)
	v.SetDefault("bands.steps", extract.BandSteps)

	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.upscale", 1.0)
	v.SetDefault("ocr.binarize", false)
	v.SetDefault("ocr.threshold", 128)
	v.SetDefault("ocr.min_confidence", 0.0)

	v.SetDefault("log.level", "info")

	if path := os.Getenv("GAMERESULT_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the extractor cannot use.
func (c *Config) Validate() error {
	if len(c.Players()) == 0 {
		return fmt.Errorf("roster.players must name at least one player")
	}
	if c.Roster.Cutoff <= 0 || c.Roster.Cutoff > 1 {
		return fmt.Errorf("roster.cutoff must be in (0, 1], got %v", c.Roster.Cutoff)
	}
	if c.Bands.Steps < 1 {
		return fmt.Errorf("bands.steps must be at least 1, got %d", c.Bands.Steps)
	}
	for _, b := range []struct {
		name string
		BandRange
	}{
		{"ranking", c.Bands.Ranking},
		{"score", c.Bands.Score},
		{"order", c.Bands.Order},
	} {
		if b.Min < 0 || b.Max > 1 || b.Min > b.Max {
			return fmt.Errorf("bands.%s must satisfy 0 <= min <= max <= 1, got [%v, %v]", b.name, b.Min, b.Max)
		}
	}
	if c.OCR.Upscale <= 0 {
		return fmt.Errorf("ocr.upscale must be positive, got %v", c.OCR.Upscale)
	}
	if c.OCR.MinConfidence < 0 || c.OCR.MinConfidence > 1 {
		return fmt.Errorf("ocr.min_confidence must be in [0, 1], got %v", c.OCR.MinConfidence)
	}
	if c.OCR.Threshold < 0 || c.OCR.Threshold > 255 {
		return fmt.Errorf("ocr.threshold must be in [0, 255], got %d", c.OCR.Threshold)
	}
	return nil
}

// Players returns the configured ids, trimmed, dropping empty entries.
func (c *Config) Players() []string {
	players := make([]string, 0, len(c.Roster.Players))
	for _, p := range c.Roster.Players {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	return players
}

// Extract returns the extractor configuration.
func (c *Config) Extract() extract.Config {
	return extract.Config{
		Roster:      c.Players(),
		RankingBand: extract.Linspace(c.Bands.Ranking.Min, c.Bands.Ranking.Max, c.Bands.Steps),
		ScoreBand:   extract.Linspace(c.Bands.Score.Min, c.Bands.Score.Max, c.Bands.Steps),
		OrderBand:   extract.Linspace(c.Bands.Order.Min, c.Bands.Order.Max, c.Bands.Steps),
		Cutoff:      c.Roster.Cutoff,
	}
}

// OCROptions returns the options for loading screenshots.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Language:      c.OCR.Language,
		Upscale:       c.OCR.Upscale,
		Binarize:      c.OCR.Binarize,
		Threshold:     uint8(c.OCR.Threshold),
		MinConfidence: c.OCR.MinConfidence,
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.Log.Level, "debug")
}
