package main

import (
	"os"

	"github.com/Swetha233926/ConsoleBankingApplication/configs"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/bank"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/cli"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/logger"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/seed"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/store"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err == nil {
		logger.Log.Info("loaded environment from .env")
	}

	configs.LoadConfig()
	logger.SetLevel(configs.AppConfig.Log.Level)

	st := store.NewMemory(configs.AppConfig.Bank.AccountNumberSeed)
	svc := bank.NewService(st)

	if configs.AppConfig.Seed.Demo {
		seed.Run(st)
	}

	rate, err := decimal.NewFromString(configs.AppConfig.Bank.DefaultInterestRate)
	if err != nil {
		logger.Log.Warn("bad default interest rate, falling back to 0.01",
			zap.String("value", configs.AppConfig.Bank.DefaultInterestRate))
		rate = decimal.RequireFromString("0.01")
	}

	logger.Log.Info("console banking ready",
		zap.Int("account_number_seed", configs.AppConfig.Bank.AccountNumberSeed))

	app := cli.NewApp(svc, os.Stdin, os.Stdout, rate)
	app.Run()

	logger.Log.Info("session ended", zap.Int("registered_users", st.UserCount()))
}
