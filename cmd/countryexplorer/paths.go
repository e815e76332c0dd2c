package main

import (
	"os"

	"github.com/alexisbeaulieu97/countryexplorer/internal/config"
)

func homeDir() (string, error) {
	return os.UserHomeDir()
}

func defaultConfigPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return config.DefaultPath(home), nil
}
