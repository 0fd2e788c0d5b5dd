package config

import (
	"path"

	"github.com/mitchellh/go-homedir"
)

const ConfigFileName = "config.toml"

func ExpandHomePath(p string) string {
	res, err := homedir.Expand(p)
	if err != nil {
		panic(err)
	}
	return res
}

func ExpandConfigPath(homePath string) string {
	return path.Join(homePath, ConfigFileName)
}
