package webhdfs

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPort    = 50070
	defaultTimeout = 30 * time.Second
)

// Config holds the connection parameters for a WebHDFS endpoint.
// It is read-only to this package and safe for concurrent use once built.
type Config struct {
	// UseSSL selects https over http.
	UseSSL bool `yaml:"use_ssl" mapstructure:"use_ssl"`

	// Host is the NameNode host. Required.
	Host string `yaml:"host" mapstructure:"host" validate:"required"`

	// Port is the WebHDFS HTTP port. Defaults to 50070.
	Port int `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`

	// User is the user.name query parameter. Optional.
	User string `yaml:"user" mapstructure:"user"`

	// Token is the delegation token query parameter. Optional.
	Token string `yaml:"token" mapstructure:"token"`

	// Timeout is applied to each execution phase. Defaults to 30s.
	// Zero after ApplyDefaults never occurs; a negative value disables it.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures transport TLS settings (CA, client cert, etc).
	// Nil uses the transport defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("webhdfs: config field %s failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("webhdfs: invalid config: %w", err)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
