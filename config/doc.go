// Package config provides configuration loading for securekit applications.
//
// It uses Viper to load a YAML file, layers environment variables on top
// (optionally from a .env file via godotenv), and unmarshals the result into
// a caller-provided struct. KitConfig bundles the kit's own sections so an
// application can configure hashing, password policy, and logging from one
// file.
//
// # Usage
//
//	var cfg config.KitConfig
//	err := config.Load("myapp", &cfg)
//	svc, err := hashing.NewService(cfg.Hashing)
package config
