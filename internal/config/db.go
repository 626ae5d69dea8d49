package config

import (
	"errors"
	"net/url"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Address  string `mapstructure:"address"`
	DbName   string `mapstructure:"db-name"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return errors.New("address is required")
	}

	u, err := url.Parse(cfg.Address)
	if err != nil {
		return errors.New("address must be a valid mongodb uri")
	}
	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return errors.New("address must use the mongodb or mongodb+srv scheme")
	}

	if cfg.DbName == "" {
		return errors.New("db-name is required")
	}

	if (cfg.Username == "") != (cfg.Password == "") {
		return errors.New("username and password must be set together")
	}

	return nil
}
