package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

type Config struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`

	// TrustProxy takes the client address from X-Real-IP/X-Forwarded-For.
	// Only enable behind a proxy that sets those headers itself.
	TrustProxy bool `yaml:"trust_proxy"`
}

// Addr is the host:port pair passed to the listener.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then HOST, PORT, DEBUG and TRUST_PROXY from the environment. An empty
// path falls back to CONFIG_FILE.
func Load(path string) (Config, error) {
	cfg := Config{
		Host: DefaultHost,
		Port: DefaultPort,
	}

	if path == "" {
		path = env("CONFIG_FILE", "")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Host = env("HOST", cfg.Host)

	port, err := envInt("PORT", cfg.Port)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	debug, err := envBool("DEBUG", cfg.Debug)
	if err != nil {
		return Config{}, err
	}
	cfg.Debug = debug

	trust, err := envBool("TRUST_PROXY", cfg.TrustProxy)
	if err != nil {
		return Config{}, err
	}
	cfg.TrustProxy = trust

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	return nil
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", key, v)
	}
	return i, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, fmt.Errorf("%s=%q is not a boolean", key, v)
	}
	return b, nil
}
