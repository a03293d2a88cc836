package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Defaults.
const (
	ServerAddress     string        = ":8080"
	BaseURL           string        = "http://localhost:8080/"
	LogLevel          string        = "INFO"
	SessionMode       string        = "signed"
	SessionCookieName string        = "my_session"
	SessionTTL        time.Duration = 24 * time.Hour
	BcryptCost        int           = 10

	secretKeyLength int = 32
)

// Flag names.
const (
	ServerAddressFlag     string = "address"
	BaseURLFlag           string = "base-url"
	LogLevelFlag          string = "log-level"
	SecretKeyFlag         string = "secret-key"
	SessionModeFlag       string = "session-mode"
	SessionCookieNameFlag string = "cookie-name"
	SessionTTLFlag        string = "session-ttl"
	BcryptCostFlag        string = "bcrypt-cost"
	UsersSeedPathFlag     string = "users-seed"
	URLsSeedPathFlag      string = "urls-seed"
	ConfigFlag            string = "config"
)

type Config struct {
	// Address of the HTTP server. Example: localhost:8080
	ServerAddress string `mapstructure:"server_address" env:"SERVER_ADDRESS" validate:"hostname_port"`
	// Prefix of generated short URLs. Must end with a path, "/" at least.
	BaseURL  string `mapstructure:"base_url" env:"BASE_URL" validate:"url"`
	LogLevel string `mapstructure:"log_level" env:"LOG_LEVEL" validate:"loglevel"`

	// Key for signing session tokens. A random one is generated when empty.
	SecretKey         string        `mapstructure:"secret_key" env:"SECRET_KEY"`
	SessionMode       string        `mapstructure:"session_mode" env:"SESSION_MODE" validate:"oneof=signed plain"`
	SessionCookieName string        `mapstructure:"session_cookie_name" env:"SESSION_COOKIE_NAME" validate:"required"`
	SessionTTL        time.Duration `mapstructure:"session_ttl" env:"SESSION_TTL" validate:"gt=0"`
	BcryptCost        int           `mapstructure:"bcrypt_cost" env:"BCRYPT_COST" validate:"min=4,max=31"`

	// JSON-lines files imported at startup. Empty means no import.
	UsersSeedPath string `mapstructure:"users_seed_path" env:"USERS_SEED_PATH"`
	URLsSeedPath  string `mapstructure:"urls_seed_path" env:"URLS_SEED_PATH"`

	// JSON config file.
	Config string `mapstructure:"-" env:"CONFIG"`

	// SecretKeyGenerated is set when SecretKey was not configured.
	SecretKeyGenerated bool `mapstructure:"-"`
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:     ServerAddress,
		BaseURL:           BaseURL,
		LogLevel:          LogLevel,
		SessionMode:       SessionMode,
		SessionCookieName: SessionCookieName,
		SessionTTL:        SessionTTL,
		BcryptCost:        BcryptCost,
	}
}

type configOptions struct {
	args     []string
	envFiles []string
}

type ConfigOption func(*configOptions)

// WithArgs replaces command line arguments.
func WithArgs(args []string) ConfigOption {
	return func(o *configOptions) {
		o.args = args
	}
}

// WithEnvFiles replaces the list of .env files to load.
func WithEnvFiles(envFiles ...string) ConfigOption {
	return func(o *configOptions) {
		o.envFiles = envFiles
	}
}

func newFlagSet(c *Config) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("tinyapp", pflag.ContinueOnError)
	flagSet.StringVarP(&c.ServerAddress, ServerAddressFlag, "a", c.ServerAddress, "Server address")
	flagSet.StringVarP(&c.BaseURL, BaseURLFlag, "b", c.BaseURL, "Prefix of short URLs")
	flagSet.StringVarP(&c.LogLevel, LogLevelFlag, "l", c.LogLevel, "Log level")
	flagSet.StringVarP(&c.SecretKey, SecretKeyFlag, "k", c.SecretKey, "Key for signing session tokens")
	flagSet.StringVarP(&c.SessionMode, SessionModeFlag, "s", c.SessionMode, "Session mode: signed or plain")
	flagSet.StringVar(&c.SessionCookieName, SessionCookieNameFlag, c.SessionCookieName, "Session cookie name")
	flagSet.DurationVar(&c.SessionTTL, SessionTTLFlag, c.SessionTTL, "Session lifetime")
	flagSet.IntVar(&c.BcryptCost, BcryptCostFlag, c.BcryptCost, "bcrypt cost")
	flagSet.StringVar(&c.UsersSeedPath, UsersSeedPathFlag, c.UsersSeedPath, "JSON-lines file with users to import")
	flagSet.StringVar(&c.URLsSeedPath, URLsSeedPathFlag, c.URLsSeedPath, "JSON-lines file with URLs to import")
	flagSet.StringVarP(&c.Config, ConfigFlag, "c", c.Config, "JSON config file")
	return flagSet
}

// applyChangedFlags copies flags set on the command line from src to dst.
func applyChangedFlags(flagSet *pflag.FlagSet, src, dst *Config) {
	flagSet.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case ServerAddressFlag:
			dst.ServerAddress = src.ServerAddress
		case BaseURLFlag:
			dst.BaseURL = src.BaseURL
		case LogLevelFlag:
			dst.LogLevel = src.LogLevel
		case SecretKeyFlag:
			dst.SecretKey = src.SecretKey
		case SessionModeFlag:
			dst.SessionMode = src.SessionMode
		case SessionCookieNameFlag:
			dst.SessionCookieName = src.SessionCookieName
		case SessionTTLFlag:
			dst.SessionTTL = src.SessionTTL
		case BcryptCostFlag:
			dst.BcryptCost = src.BcryptCost
		case UsersSeedPathFlag:
			dst.UsersSeedPath = src.UsersSeedPath
		case URLsSeedPathFlag:
			dst.URLsSeedPath = src.URLsSeedPath
		case ConfigFlag:
			dst.Config = src.Config
		}
	})
}

func loadConfigFile(path string, c *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zapcore.ParseLevel(fl.Field().String())
	return err == nil
}

func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	return validate.Struct(c)
}

func generateSecretKey() (string, error) {
	b := make([]byte, secretKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewConfig builds the configuration.
// Precedence: command line flags, environment (.env included), JSON config file, defaults.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	options := &configOptions{
		args:     os.Args[1:],
		envFiles: []string{".env"},
	}
	for _, opt := range opts {
		opt(options)
	}

	for _, envFile := range options.envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	flagValues := defaultConfig()
	flagSet := newFlagSet(flagValues)
	if err := flagSet.Parse(options.args); err != nil {
		return nil, err
	}

	c := defaultConfig()

	configPath := os.Getenv("CONFIG")
	if flagSet.Changed(ConfigFlag) {
		configPath = flagValues.Config
	}
	if configPath != "" {
		if err := loadConfigFile(configPath, c); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, err
	}
	applyChangedFlags(flagSet, flagValues, c)
	c.Config = configPath

	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.SecretKey == "" && c.SessionMode == SessionMode {
		sk, err := generateSecretKey()
		if err != nil {
			return nil, err
		}
		c.SecretKey = sk
		c.SecretKeyGenerated = true
	}

	return c, nil
}
