// Package config loads application configuration from file and
// environment and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leadwerk/outreach-cli/internal/placeholder"
	"github.com/leadwerk/outreach-cli/internal/store"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig        `yaml:"store" mapstructure:"store"`
	Templates TemplatesConfig    `yaml:"templates" mapstructure:"templates"`
	Output    OutputConfig       `yaml:"output" mapstructure:"output"`
	Generate  GenerateConfig     `yaml:"generate" mapstructure:"generate"`
	Sender    placeholder.Sender `yaml:"sender" mapstructure:"sender"`
	Log       LogConfig          `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string            `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string            `yaml:"database_url" mapstructure:"database_url"`
	Pool        *store.PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// TemplatesConfig locates the offer template tree.
type TemplatesConfig struct {
	Root string `yaml:"root" mapstructure:"root"`
	Docx string `yaml:"docx" mapstructure:"docx"`
	Lang string `yaml:"lang" mapstructure:"lang"`
}

// OutputConfig configures where generated bundles land.
type OutputConfig struct {
	Root string `yaml:"root" mapstructure:"root"`
}

// GenerateConfig configures the offer generation batch.
type GenerateConfig struct {
	Concurrency int  `yaml:"concurrency" mapstructure:"concurrency"`
	MinScore    int  `yaml:"min_score" mapstructure:"min_score"`
	Overwrite   bool `yaml:"overwrite" mapstructure:"overwrite"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "outreach.db")
	v.SetDefault("templates.root", "templates")
	v.SetDefault("templates.docx", "templates/Angebot-Webseitenservice-template.docx")
	v.SetDefault("templates.lang", "en")
	v.SetDefault("output.root", "offer-sheets")
	v.SetDefault("generate.concurrency", 4)
	v.SetDefault("generate.min_score", 0)
	// Sender identity keys need defaults so AutomaticEnv values reach
	// Unmarshal; without one viper never asks the environment for a key.
	v.SetDefault("sender.name", "")
	v.SetDefault("sender.title", "")
	v.SetDefault("sender.company", "")
	v.SetDefault("sender.website", "")
	v.SetDefault("sender.phone", "")
	v.SetDefault("sender.email", "")
	v.SetDefault("sender.city", "")
	v.SetDefault("sender.industry", "")
	v.SetDefault("sender.calendar_link", "")
	v.SetDefault("sender.project_link", "")
	v.SetDefault("sender.short_outcome", "")
	v.SetDefault("sender.price", "")
	v.SetDefault("sender.pages", "")
	v.SetDefault("sender.timeline", "")
	v.SetDefault("sender.support_period", "")
	v.SetDefault("sender.role", "Owner")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
