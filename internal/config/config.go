// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// Configuration holds all configuration for quote-builder.
type Configuration struct {
	Company Company
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// Company is the identity block printed on every quote document. Empty
// fields fall back to the built-in defaults.
type Company struct {
	Name    string
	Mark    string
	Tagline string
	Address string
	Phone   string
	Email   string
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pdf, qbo-csv, qb-iif, summary
}

// Default returns the configuration used when no config file is supplied.
func Default() *Configuration {
	conf := &Configuration{}
	conf.applyDefaults()
	return conf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Company.Name == "" {
		conf.Company.Name = constants.DefaultCompanyName
	}
	if conf.Company.Mark == "" {
		conf.Company.Mark = constants.DefaultCompanyMark
	}
	if conf.Company.Tagline == "" {
		conf.Company.Tagline = constants.DefaultCompanyTagline
	}
	if conf.Company.Address == "" {
		conf.Company.Address = constants.DefaultCompanyAddress
	}
	if conf.Company.Phone == "" {
		conf.Company.Phone = constants.DefaultCompanyPhone
	}
	if conf.Company.Email == "" {
		conf.Company.Email = constants.DefaultCompanyEmail
	}
}

// ContactLine returns the single-line contact banner printed under the
// document header.
func (c Company) ContactLine() string {
	return c.Address + "  |  " + c.Phone + "  |  " + c.Email
}
