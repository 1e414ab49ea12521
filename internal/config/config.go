// Package config layers flags, CHROMSPLIT_* environment variables, an
// optional config file and an optional .env file into one viper instance.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "CHROMSPLIT"
	// DotEnv is read from the working directory when present.
	DotEnv = ".env"
)

// Load returns a viper instance where, for every flag in flags, a value
// set on the command line beats the environment, which beats the config
// file, which beats the flag default. dotenv variables never replace ones
// already in the environment.
func Load(flags *pflag.FlagSet, dotenv string) (*viper.Viper, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return v, nil
}
