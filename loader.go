package webhdfs

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by LoadConfig,
// e.g. WEBHDFS_HOST, WEBHDFS_USE_SSL, WEBHDFS_TLS_CA_FILE.
const envPrefix = "WEBHDFS"

// loaderOptions holds optional overrides for LoadConfig.
type loaderOptions struct {
	configFile string
	envFile    string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*loaderOptions)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lo *loaderOptions) { lo.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lo *loaderOptions) { lo.envFile = path }
}

// LoadConfig builds a Config from a YAML file, a .env file, and process
// environment variables, in increasing order of precedence. Missing files
// are not an error; the defaults still apply. The returned Config has
// defaults applied and has been validated.
func LoadConfig(opts ...LoaderOption) (Config, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}
	if lo.configFile == "" {
		lo.configFile = findFile("webhdfs.yml", "config/webhdfs.yml")
	}
	if lo.envFile == "" {
		lo.envFile = findFile(".env")
	}

	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			return Config{}, fmt.Errorf("webhdfs: load env file %s: %w", lo.envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if lo.configFile != "" {
		v.SetConfigFile(lo.configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("webhdfs: read config file %s: %w", lo.configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("webhdfs: unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindKeys registers every config key so AutomaticEnv can see variables
// that have no counterpart in the YAML file.
func bindKeys(v *viper.Viper) {
	keys := []string{
		"use_ssl", "host", "port", "user", "token", "timeout",
		"tls.skip_verify", "tls.ca_file", "tls.cert_file", "tls.key_file",
		"tls.server_name", "tls.min_version",
	}
	for _, k := range keys {
		// BindEnv only fails on an empty key
		_ = v.BindEnv(k)
	}
}

// findFile returns the first existing path from the candidates, or "".
func findFile(candidates ...string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
