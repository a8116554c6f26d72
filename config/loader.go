package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cmelgaard/securekit/logger"
)

// FileSystem abstracts file operations so loaders can be tested without
// touching the real working directory.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Option configures Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	fs         FileSystem
	configFile string
	envFile    string
}

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(o *loaderOptions) { o.fs = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load loads configuration for the named application into cfg.
//
// Resolution order: YAML config file as the base, then environment variables
// (optionally loaded from a .env file) on top. Missing files are not errors;
// unreadable ones are logged and skipped so a bad file never silently zeroes
// the whole configuration.
func Load(name string, cfg any, opts ...Option) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = RealFileSystem{}
	}

	log := logger.Get("config")
	v := viper.New()

	configFile := o.configFile
	if configFile == "" {
		configFile = findFirst(o.fs, configSearchPaths(name))
	}
	if configFile != "" && o.fs.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			log.Warn("failed to read config file, continuing with environment only",
				logger.Fields("path", configFile, logger.FieldError, err.Error()))
		}
	}

	envFile := o.envFile
	if envFile == "" {
		envFile = findFirst(o.fs, envSearchPaths(name))
	}
	if envFile != "" && o.fs.Exists(envFile) {
		if err := o.fs.LoadEnv(envFile); err != nil {
			log.Warn("failed to load .env file",
				logger.Fields("path", envFile, logger.FieldError, err.Error()))
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", name, err)
	}
	return nil
}

// configSearchPaths lists the standard config file locations, most specific
// first.
func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./%s.yml", name),
		"./config/config.yml",
		"./config.yml",
	}
}

// envSearchPaths lists the standard .env file locations, most specific first.
func envSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf(".env.%s", name),
		"./config/.env",
		".env",
	}
}

func findFirst(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}

// bindEnvVars maps UPPER_SNAKE environment variables onto viper's nested
// keys: HASHING_SALT_LENGTH becomes both "hashing_salt_length" and
// progressively nested variants like "hashing.salt_length".
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		for _, variant := range keyVariants(key) {
			v.Set(variant, value)
		}
	}
}

func keyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) == 1 {
		return []string{lower}
	}
	variants := []string{lower, strings.ReplaceAll(lower, "_", ".")}
	// Splitting at the last underscore reproduces the all-dots variant
	// already added above, so stop one boundary short.
	for i := 1; i < len(parts)-1; i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
