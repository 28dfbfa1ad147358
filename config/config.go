package config

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Host        string   `koanf:"host"`
	Port        uint     `koanf:"port"`
	DatabaseURL string   `koanf:"database_url"`
	CORSOrigins []string `koanf:"cors_origins"`
	Debug       bool     `koanf:"debug"`
}

func defaults() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8000,
		DatabaseURL: "survey.sqlite",
		CORSOrigins: []string{"https://ailights.org", "http://localhost:3000"},
		Debug:       false,
	}
}

// envMappings translates environment variables to config keys. DATABASE_URL
// keeps its conventional name, everything else carries the SURVEY_ prefix.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"DATABASE_URL":        "database_url",
	"SURVEY_HTTP_HOST":    "host",
	"SURVEY_HTTP_PORT":    "port",
	"SURVEY_CORS_ORIGINS": "cors_origins",
	"SURVEY_DEBUG":        "debug",
}

// Load builds the configuration from defaults overlaid with environment
// variables. It is meant to be called once, at startup.
func Load() (cfg Config, err error) {
	k := koanf.New(".")

	if err = k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return cfg, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(name string) string {
		// returning "" drops the variable
		return envMappings[name]
	})
	if err = k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}

	// The origin allow-list arrives as a single comma-separated variable.
	if raw, ok := k.Get("cors_origins").(string); ok {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		k.Set("cors_origins", origins)
	}

	if err = k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (cfg Config) Addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr()
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
