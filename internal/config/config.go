package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoNick   = errors.New("nick is required")
	ErrNoServer = errors.New("server is required")
)

// Config holds the connection and client settings
type Config struct {
	Nick       string `yaml:"nick"`
	Username   string `yaml:"username"`
	IRCName    string `yaml:"irc_name"`
	Server     string `yaml:"server"`
	Port       int    `yaml:"port"`
	ServerPass string `yaml:"server_pass"`

	UseTLS             bool `yaml:"use_tls"`
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`

	Channels    []string `yaml:"channels"`
	DataDir     string   `yaml:"data_dir"`
	QuitMessage string   `yaml:"quit_message"`

	// Outgoing lines per second, and how many may be sent back to back.
	SendRate  float64 `yaml:"send_rate"`
	SendBurst int     `yaml:"send_burst"`
}

// Load reads and parses a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Nick == "" {
		return nil, ErrNoNick
	}
	if cfg.Server == "" {
		return nil, ErrNoServer
	}

	// Set defaults
	if cfg.Username == "" {
		cfg.Username = cfg.Nick
	}
	if cfg.IRCName == "" {
		cfg.IRCName = cfg.Nick
	}
	if cfg.Port == 0 {
		cfg.Port = 6667
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.QuitMessage == "" {
		cfg.QuitMessage = "Shutting down"
	}
	if cfg.SendRate <= 0 {
		cfg.SendRate = 2
	}
	if cfg.SendBurst <= 0 {
		cfg.SendBurst = 4
	}

	return &cfg, nil
}

// Addr returns the server address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}
