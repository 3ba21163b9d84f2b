package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Environments selecting the logger setup
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Default values
const (
	DefaultAPIEndpoint  = "https://{lang}.wikipedia.org/w/api.php"
	DefaultUserAgent    = "WikiReflectionTool/1.0"
	DefaultGUILanguage  = "English"
	DefaultWikiLanguage = "en"

	// LanguagePlaceholder is substituted with the wiki language code in APIEndpoint
	LanguagePlaceholder = "{lang}"
)

// Config holds the ambient configuration. Nothing in it is written back.
type Config struct {
	Env          string        `yaml:"env" env:"WIKI_ENV" env-default:"local"`
	APIEndpoint  string        `yaml:"api_endpoint" env:"WIKI_API_ENDPOINT" env-default:"https://{lang}.wikipedia.org/w/api.php"`
	UserAgent    string        `yaml:"user_agent" env:"WIKI_USER_AGENT" env-default:"WikiReflectionTool/1.0"`
	HTTPTimeout  time.Duration `yaml:"http_timeout" env:"WIKI_HTTP_TIMEOUT" env-default:"0s"`
	GUILanguage  string        `yaml:"gui_language" env:"WIKI_GUI_LANGUAGE" env-default:"English"`
	WikiLanguage string        `yaml:"wiki_language" env:"WIKI_LANGUAGE" env-default:"en"`
	DarkTheme    bool          `yaml:"dark_theme" env:"WIKI_DARK_THEME" env-default:"false"`
}

// Load reads the configuration. An optional .env file in the working
// directory is loaded first; when path is set the YAML file is read and
// environment variables override it, otherwise only the environment is used.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Default returns the built-in configuration without reading anything
func Default() *Config {
	return &Config{
		Env:          EnvLocal,
		APIEndpoint:  DefaultAPIEndpoint,
		UserAgent:    DefaultUserAgent,
		GUILanguage:  DefaultGUILanguage,
		WikiLanguage: DefaultWikiLanguage,
	}
}

// validate applies the rules on a loaded configuration
func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: unknown env %q", c.Env)
	}

	if !strings.Contains(c.APIEndpoint, LanguagePlaceholder) {
		return fmt.Errorf("config: api endpoint %q must contain %s", c.APIEndpoint, LanguagePlaceholder)
	}
	parsed, err := url.Parse(strings.ReplaceAll(c.APIEndpoint, LanguagePlaceholder, DefaultWikiLanguage))
	if err != nil {
		return fmt.Errorf("config: invalid api endpoint %q: %w", c.APIEndpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("config: api endpoint %q must use http or https", c.APIEndpoint)
	}

	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: http timeout must not be negative, got %s", c.HTTPTimeout)
	}

	if _, ok := GUILanguageTag(c.GUILanguage); !ok {
		return fmt.Errorf("config: unsupported gui language %q", c.GUILanguage)
	}
	if _, ok := WikiLanguageName(c.WikiLanguage); !ok {
		return fmt.Errorf("config: unsupported wiki language %q", c.WikiLanguage)
	}

	return nil
}
