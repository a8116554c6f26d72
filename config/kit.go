package config

import (
	"github.com/cmelgaard/securekit/hashing"
	"github.com/cmelgaard/securekit/logger"
	"github.com/cmelgaard/securekit/password"
)

// KitConfig bundles the kit's own configuration sections.
// Applications embed it in their config struct:
//
//	type AppConfig struct {
//	    config.KitConfig `mapstructure:",squash"`
//	    ListenAddr       string `mapstructure:"listen_addr"`
//	}
type KitConfig struct {
	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Hashing  hashing.Config  `yaml:"hashing" mapstructure:"hashing"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// ApplyDefaults applies defaults to every section.
func (c *KitConfig) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Hashing.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate validates every section.
func (c *KitConfig) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Hashing.Validate(); err != nil {
		return err
	}
	return c.Password.Validate()
}
