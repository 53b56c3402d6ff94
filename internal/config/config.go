package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/shopassist"
	envPrefix  = "SA"
	dotEnvFile = ".env"

	DefaultAPIURL     = "http://localhost:5000"
	DefaultGraphQLURL = "https://online.mmvietnam.com/graphql"
	DefaultStoreCode  = "b2c_10010_vi"
	DefaultModel      = "gemini-1.5-flash"
	DefaultIntentURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultBackend    = "toml"
	DefaultLogLevel   = "warn"
)

const (
	keyAPIURL            = "api_url"
	keyGraphQLURL        = "graphql_url"
	keyStoreCode         = "store_code"
	keyRequestTimeout    = "request.timeout"
	keyRequestMaxRetries = "request.max_retries"
	keyRequestRetryDelay = "request.retry_delay"
	keyGraphQLTimeout    = "graphql.timeout"
	keyProbeTimeout      = "probe.timeout"
	keyProbeDelay        = "probe.delay"
	keyIntentAPIKey      = "intent.api_key"
	keyIntentBaseURL     = "intent.base_url"
	keyIntentModel       = "intent.model"
	keyStoreBackend      = "store.backend"
	keyStorePath         = "store.path"
	keyLogLevel          = "log.level"
)

type Request struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

type Probe struct {
	Timeout time.Duration
	Delay   time.Duration
}

type Intent struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Store struct {
	Backend string
	Path    string
}

type Config struct {
	APIURL         string
	GraphQLURL     string
	StoreCode      string
	Request        Request
	GraphQLTimeout time.Duration
	Probe          Probe
	Intent         Intent
	Store          Store
	LogLevel       string
}

// Load reads ~/.config/shopassist/config.toml and SA_* environment variables,
// after loading .env from the working directory when one exists. Environment
// values win over the file.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, dir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		APIURL:     strings.TrimSpace(cfg.GetString(keyAPIURL)),
		GraphQLURL: strings.TrimSpace(cfg.GetString(keyGraphQLURL)),
		StoreCode:  strings.TrimSpace(cfg.GetString(keyStoreCode)),
		Request: Request{
			Timeout:    cfg.GetDuration(keyRequestTimeout),
			MaxRetries: cfg.GetInt(keyRequestMaxRetries),
			RetryDelay: cfg.GetDuration(keyRequestRetryDelay),
		},
		GraphQLTimeout: cfg.GetDuration(keyGraphQLTimeout),
		Probe: Probe{
			Timeout: cfg.GetDuration(keyProbeTimeout),
			Delay:   cfg.GetDuration(keyProbeDelay),
		},
		Intent: Intent{
			APIKey:  strings.TrimSpace(cfg.GetString(keyIntentAPIKey)),
			BaseURL: strings.TrimSpace(cfg.GetString(keyIntentBaseURL)),
			Model:   strings.TrimSpace(cfg.GetString(keyIntentModel)),
		},
		Store: Store{
			Backend: strings.ToLower(strings.TrimSpace(cfg.GetString(keyStoreBackend))),
			Path:    strings.TrimSpace(cfg.GetString(keyStorePath)),
		},
		LogLevel: strings.TrimSpace(cfg.GetString(keyLogLevel)),
	}

	loaded.Store.Path, err = expandHome(loaded.Store.Path, homeDir)
	if err != nil {
		return Config{}, err
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper, dir string) {
	cfg.SetDefault(keyAPIURL, DefaultAPIURL)
	cfg.SetDefault(keyGraphQLURL, DefaultGraphQLURL)
	cfg.SetDefault(keyStoreCode, DefaultStoreCode)
	cfg.SetDefault(keyRequestTimeout, 20*time.Second)
	cfg.SetDefault(keyRequestMaxRetries, 2)
	cfg.SetDefault(keyRequestRetryDelay, time.Second)
	cfg.SetDefault(keyGraphQLTimeout, 15*time.Second)
	cfg.SetDefault(keyProbeTimeout, 5*time.Second)
	cfg.SetDefault(keyProbeDelay, 2*time.Second)
	cfg.SetDefault(keyIntentAPIKey, "")
	cfg.SetDefault(keyIntentBaseURL, DefaultIntentURL)
	cfg.SetDefault(keyIntentModel, DefaultModel)
	cfg.SetDefault(keyStoreBackend, DefaultBackend)
	cfg.SetDefault(keyStorePath, dir)
	cfg.SetDefault(keyLogLevel, DefaultLogLevel)
}

func (c Config) Validate() error {
	var errs []error

	if c.APIURL == "" {
		errs = append(errs, errors.New("api_url is empty"))
	}
	if c.GraphQLURL == "" {
		errs = append(errs, errors.New("graphql_url is empty"))
	}
	if c.Request.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("request.timeout must be positive, got %s", c.Request.Timeout))
	}
	if c.Request.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("request.max_retries must not be negative, got %d", c.Request.MaxRetries))
	}
	if c.Request.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("request.retry_delay must not be negative, got %s", c.Request.RetryDelay))
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path is empty"))
	}
	switch c.Store.Backend {
	case "toml", "file", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("store.backend %q is not one of toml, file, sqlite", c.Store.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

func expandHome(path string, homeDir string) (string, error) {
	if path == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}

	return absolute, nil
}
