package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App     *App           `json:"app" yaml:"app"`
	Server  *Server        `json:"server" yaml:"server"`
	MySQL   *MySQL         `json:"mysql" yaml:"mysql"`
	Redis   *Redis         `json:"redis" yaml:"redis"`
	Jwt     *Jwt           `json:"jwt" yaml:"jwt"`
	Oss     *OssConfig     `json:"oss" yaml:"oss"`
	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return &conf
}

// Debug reports whether the app runs in debug mode.
func (c *Config) Debug() bool {
	return c.App.Debug
}
