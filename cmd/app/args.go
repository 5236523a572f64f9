package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"SubastasAPI/internal/db"
)

type Args struct {
	Port string
	Seed bool
	DB   db.Config
}

// ParseArgs binds command-line flags to SUBASTAS_-prefixed environment
// variables; flags win when both are set.
func ParseArgs() Args {
	// server config
	pflag.String("port", "8080", "")
	pflag.Bool("seed", true, "insert sample auctions at startup")

	// db config
	pflag.String("db-user", "postgres", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "localhost", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "subastas", "")
	pflag.String("db-sslmode", "disable", "")

	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SUBASTAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Args{
		Port: viper.GetString("port"),
		Seed: viper.GetBool("seed"),
		DB: db.Config{
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetInt("db-port"),
			Database: viper.GetString("db-database"),
			SSLMode:  viper.GetString("db-sslmode"),
		},
	}
}
