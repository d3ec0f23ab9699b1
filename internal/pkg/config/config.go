package config

import (
	"fmt"
	"strings"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RSA_TOOLKIT_KEYGEN_SEED
const EnvPrefix = "RSA_TOOLKIT"

// CLIConfig holds the settings of the command line tool
type CLIConfig struct {
	PersistKeys bool             `mapstructure:"persist_keys"`
	Logger      LoggerSettings   `mapstructure:"logger"`
	Database    DatabaseSettings `mapstructure:"database"`
	KeyGen      KeyGenSettings   `mapstructure:"keygen"`
	Codec       CodecSettings    `mapstructure:"codec"`
}

// Validate checks every nested settings block
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if c.PersistKeys {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.KeyGen.Validate(); err != nil {
		return err
	}
	return c.Codec.Validate()
}

// RestConfig holds the settings of the REST API
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	KeyGen    KeyGenSettings    `mapstructure:"keygen"`
	Codec     CodecSettings     `mapstructure:"codec"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
}

// Validate checks every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(struct {
		Port string `validate:"required,numeric"`
	}{Port: c.Port}); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	for _, s := range []interface{ Validate() error }{&c.Logger, &c.Database, &c.KeyGen, &c.Codec, &c.RateLimit} {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeCLIConfig loads the CLI configuration from path (optional) and the environment.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// InitializeRestConfig loads the REST API configuration from path (optional) and the environment.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return v, nil
}

// Every key needs a default, otherwise AutomaticEnv never sees it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("persist_keys", false)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "rsa-toolkit.db")
	v.SetDefault("database.name", "")

	v.SetDefault("keygen.lower_limit", textbook.DefaultLowerLimit)
	v.SetDefault("keygen.upper_limit", textbook.DefaultUpperLimit)
	v.SetDefault("keygen.seed", 0)
	v.SetDefault("keygen.max_attempts", 100000)

	v.SetDefault("codec.workers", 1)
	v.SetDefault("codec.encrypted_file", textbook.DefaultEncryptedFile)
	v.SetDefault("codec.decrypted_file", textbook.DefaultDecryptedFile)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 30)
	v.SetDefault("rate_limit.burst", 60)
}
