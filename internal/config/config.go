package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	API    API    `mapstructure:"api"`
	Ledger Ledger `mapstructure:"ledger"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Ledger struct {
	Dir              string  `mapstructure:"dir"`
	AccountsFile     string  `mapstructure:"accounts_file"`
	TransactionsFile string  `mapstructure:"transactions_file"`
	OpeningBalance   float64 `mapstructure:"opening_balance"`
	HistoryLimit     int     `mapstructure:"history_limit"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("ledger.dir", "./data")
	viper.SetDefault("ledger.accounts_file", "bank.csv")
	viper.SetDefault("ledger.transactions_file", "transactions.csv")
	viper.SetDefault("ledger.opening_balance", 500.0)
	viper.SetDefault("ledger.history_limit", 5)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
