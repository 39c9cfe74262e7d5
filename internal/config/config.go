package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/validator"
	"gopkg.in/yaml.v3"
)

var GistindexVersion = "0.0.1"

const envConfig = "GISTINDEX_CONFIG"

var C *config

// Not using nested structs because the library
// doesn't support dot notation in this case sadly
type config struct {
	LogLevel string `yaml:"log-level" validate:"loglevel"`

	HttpHost string `yaml:"http.host"`
	HttpPort string `yaml:"http.port" validate:"port"`

	GithubApiUrl       string        `yaml:"github.api-url" validate:"required,url"`
	GithubGistUrl      string        `yaml:"github.gist-url" validate:"required,url"`
	GithubFetchTimeout time.Duration `yaml:"github.fetch-timeout" validate:"gt=0"`

	MetricsEnabled bool   `yaml:"metrics.enabled"`
	MetricsHost    string `yaml:"metrics.host"`
	MetricsPort    string `yaml:"metrics.port" validate:"port"`
}

func configWithDefaults() *config {
	c := &config{}

	c.LogLevel = "info"

	c.HttpHost = "0.0.0.0"
	c.HttpPort = "8080"

	c.GithubApiUrl = "https://api.github.com"
	c.GithubGistUrl = "https://gist.github.com"
	c.GithubFetchTimeout = 10 * time.Second

	c.MetricsEnabled = false
	c.MetricsHost = "0.0.0.0"
	c.MetricsPort = "6158"

	return c
}

// InitConfig builds C from the defaults, the YAML file at configPath (if any)
// and finally the YAML held in the GISTINDEX_CONFIG environment variable.
func InitConfig(configPath string, out io.Writer) error {
	c := configWithDefaults()

	if configPath != "" {
		file, err := os.Open(configPath)
		if err != nil {
			return fmt.Errorf("cannot open config file: %w", err)
		}
		defer file.Close()

		_, _ = fmt.Fprintln(out, "Using config file: "+configPath)

		// Override default values with values from the config file
		d := yaml.NewDecoder(file)
		if err = d.Decode(c); err != nil && err != io.EOF {
			return fmt.Errorf("cannot decode config file: %w", err)
		}
	}

	// Override with the environment variable (as yaml)
	if configEnv := os.Getenv(envConfig); configEnv != "" {
		_, _ = fmt.Fprintln(out, "Using config from environment variable: "+envConfig)
		d := yaml.NewDecoder(strings.NewReader(configEnv))
		if err := d.Decode(c); err != nil && err != io.EOF {
			return fmt.Errorf("cannot decode config from environment: %w", err)
		}
	}

	if err := validator.NewValidator().Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %s", validator.ValidationMessages(err))
	}

	C = c

	return nil
}

func InitLog() {
	var level zerolog.Level
	level, err := zerolog.ParseLevel(C.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
}

func HttpAddress() string {
	return C.HttpHost + ":" + C.HttpPort
}

func MetricsAddress() string {
	return C.MetricsHost + ":" + C.MetricsPort
}
