package configs

import (
	"errors"

	"github.com/Swetha233926/ConsoleBankingApplication/internal/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Bank struct {
		AccountNumberSeed   int    `mapstructure:"account_number_seed"`
		DefaultInterestRate string `mapstructure:"default_interest_rate"`
	} `mapstructure:"bank"`
	Seed struct {
		Demo bool `mapstructure:"demo"`
	} `mapstructure:"seed"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func LoadConfig() {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("bank.account_number_seed", 1000)
	viper.SetDefault("bank.default_interest_rate", "0.01")
	viper.SetDefault("seed.demo", false)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	// The config file is optional for a console app; defaults and env
	// overrides are enough to run.
	var fileLookupError viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil {
		if !errors.As(err, &fileLookupError) {
			logger.Log.Fatal("failed to read config", zap.Error(err))
		}
		logger.Log.Info("no config file found, using defaults")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Log.Fatal("failed to unmarshal config", zap.Error(err))
	}
}
