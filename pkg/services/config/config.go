package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Sabinoze00/logbook-aziendale/pkg/services/textmatch"
)

type Config struct {
	Addr                string        `mapstructure:"addr"`
	WorkbookPath        string        `mapstructure:"workbook_path"`
	OverridesPath       string        `mapstructure:"overrides_path"`
	SimilarityThreshold float64       `mapstructure:"similarity_threshold"`
	ShutdownTimeout     time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads the application config file (yaml). Only the workbook
// path is required; everything else has a default.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("overrides_path", "mapping-overrides.json")
	v.SetDefault("similarity_threshold", textmatch.DefaultThreshold)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.WorkbookPath == "" {
		return nil, fmt.Errorf("workbook_path is required")
	}
	return &cfg, nil
}
