package commands

import (
	"fmt"
	"sync"

	"github.com/Jesso3/RSA-Encyption/internal/app"
	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/cryptography"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/keyfile"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/persistence"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/primesource"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Environment holds the services shared by all commands. They are built on first use,
// after cobra has parsed the global --config flag.
type Environment struct {
	configPath string

	once sync.Once
	err  error

	cfg           *config.CLIConfig
	logger        logger.Logger
	db            *gorm.DB
	keyService    textbook.KeyService
	cipherService textbook.CipherService
}

// NewEnvironment registers the global flags on rootCmd
func NewEnvironment(rootCmd *cobra.Command) *Environment {
	env := &Environment{}
	rootCmd.PersistentFlags().StringVar(&env.configPath, "config", "", "Path to a YAML config file (optional)")
	return env
}

func (env *Environment) load() error {
	env.once.Do(func() {
		env.err = env.build()
	})
	return env.err
}

func (env *Environment) build() error {
	cfg, err := config.InitializeCLIConfig(env.configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(log)
	if err != nil {
		return fmt.Errorf("failed to create key generator: %w", err)
	}
	parser, err := cryptography.NewKeyParser(log)
	if err != nil {
		return fmt.Errorf("failed to create key parser: %w", err)
	}
	codec, err := cryptography.NewCodec(log, cfg.Codec.Workers)
	if err != nil {
		return fmt.Errorf("failed to create codec: %w", err)
	}
	sampler, err := primesource.NewSampler(log, &cfg.KeyGen)
	if err != nil {
		return fmt.Errorf("failed to create prime sampler: %w", err)
	}

	var repo textbook.KeyRepository
	if cfg.PersistKeys {
		db, err := persistence.NewDBConnection(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to create db connection: %w", err)
		}
		if err := persistence.Migrate(db); err != nil {
			return err
		}
		repo, err = persistence.NewGormKeyRepository(db, log)
		if err != nil {
			return fmt.Errorf("failed to create key repository: %w", err)
		}
		env.db = db
	}

	keyService, err := app.NewKeyService(generator, parser, sampler, repo, nil, &cfg.KeyGen, log)
	if err != nil {
		return fmt.Errorf("failed to create key service: %w", err)
	}
	cipherService, err := app.NewCipherService(parser, codec, nil, log)
	if err != nil {
		return fmt.Errorf("failed to create cipher service: %w", err)
	}

	env.cfg = cfg
	env.logger = log
	env.keyService = keyService
	env.cipherService = cipherService
	return nil
}

// Close releases the key registry connection, if one was opened
func (env *Environment) Close() error {
	if env.db == nil {
		return nil
	}
	return persistence.CloseDB(env.db)
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// resolveKey returns the --key flag, or the key of the given type from the --key-file bundle
func resolveKey(cmd *cobra.Command, defaultType string) (string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}

	switch {
	case key != "" && keyFile != "":
		return "", fmt.Errorf("--key and --key-file are mutually exclusive")
	case key != "":
		return key, nil
	case keyFile == "":
		return "", fmt.Errorf("one of --key or --key-file is required")
	}

	keyType, err := cmd.Flags().GetString("key-type")
	if err != nil {
		return "", fmt.Errorf("invalid key-type flag: %w", err)
	}
	if keyType == "" {
		keyType = defaultType
	}

	bundle, err := keyfile.Load(keyFile)
	if err != nil {
		return "", err
	}
	return bundle.Key(keyType)
}
