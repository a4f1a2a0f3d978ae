// Configuration for the command line client is loaded from a yaml file. Credentials can be
// overridden from the environment (or a .env file), so they do not need to live in the yaml.

package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway"
)

type (
	Application struct {
		Gateway GatewayConfig `yaml:"gateway"`
		Logging LoggingConfig `yaml:"logging"`
	}

	GatewayConfig struct {
		BaseUrl        string `yaml:"base_url"`
		Login          string `yaml:"login"`
		Password       string `yaml:"password"`
		UserAgent      string `yaml:"user_agent"`
		CircuitBreaker bool   `yaml:"circuit_breaker"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
	}
)

const (
	EnvBaseUrl  = "GATEWAY_BASE_URL"
	EnvLogin    = "GATEWAY_LOGIN"
	EnvPassword = "GATEWAY_PASSWORD"
)

func UnmarshalFromYamlConfiguration(file io.Reader) (*Application, error) {
	d := yaml.NewDecoder(file)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// LoadEnvFile reads a .env style file into the process environment. A missing file is not an error.
// Variables that are already set win over the file.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnvironment overrides base url and credentials with non-empty environment variables.
func ApplyEnvironment(conf *Application, lookup func(key string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	override := func(target *string, key string) {
		if value, ok := lookup(key); ok && value != "" {
			*target = value
		}
	}
	override(&conf.Gateway.BaseUrl, EnvBaseUrl)
	override(&conf.Gateway.Login, EnvLogin)
	override(&conf.Gateway.Password, EnvPassword)
}

// ClientConfig maps the yaml section to the client configuration.
func (c GatewayConfig) ClientConfig() gateway.Config {
	return gateway.Config{
		BaseUrl:  c.BaseUrl,
		Login:    c.Login,
		Password: c.Password,
	}
}

// ClientOptions returns the client options implied by the configuration, minus logging and transport.
func (c GatewayConfig) ClientOptions() []gateway.Option {
	opts := make([]gateway.Option, 0)
	if c.UserAgent != "" {
		opts = append(opts, gateway.WithUserAgent(c.UserAgent))
	}
	if c.CircuitBreaker {
		opts = append(opts, gateway.WithCircuitBreaker("payment-gateway"))
	}
	return opts
}
