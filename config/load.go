package config

import (
	"flag"
	"os"
	"path"

	"github.com/Cheeseborgers/quik-math/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file")
}

// Path returns the configured config file location, defaulting to
// config.yaml in the application home folder.
func Path() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), "config.yaml")
}

// LoadConfig reads the yaml config file. A missing file is not an
// error; defaults are returned instead.
func LoadConfig() (*Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	log.WithField("path", Path()).Debug("Loaded config")
	return c, nil
}
