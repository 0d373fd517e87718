package config

import "github.com/Cheeseborgers/quik-math/random"

type Config struct {
	Seed         uint64 `yaml:"seed,omitempty"`
	Tokens       int    `yaml:"tokens,omitempty"`
	TokenLength  int    `yaml:"tokenLength,omitempty"`
	Alphabet     string `yaml:"alphabet,omitempty"`
	IDs          int    `yaml:"ids,omitempty"`
	Samples      int    `yaml:"samples,omitempty"`
	Generator    string `yaml:"generator,omitempty"`
	Resume       bool   `yaml:"resume,omitempty"`
	ServeAddress string `yaml:"serve,omitempty"`
	ChartSamples int    `yaml:"chartSamples,omitempty"`
	ChartTTL     int    `yaml:"chartTTL,omitempty"`
	ChartRefresh bool   `yaml:"chartRefresh,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		TokenLength:  16,
		Alphabet:     "alphanumeric",
		Generator:    "default",
		ChartSamples: 100000,
		ChartTTL:     60,
	}
}

// AlphabetType maps the configured alphabet name to the random package
// enum; anything other than "alpha" selects the alphanumeric set.
func (c *Config) AlphabetType() random.Alphabet {
	if c.Alphabet == "alpha" {
		return random.Alpha
	}
	return random.AlphaNumeric
}
