package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDepth           = 5000
	DefaultMessageInterval = 1500 * time.Millisecond
	DefaultDotSize         = 2
	DefaultFPS             = 60
	DefaultTheme           = "classic"
	DefaultRegistryPath    = "seeds.json"
	DefaultRedisKey        = "seeds"
	DefaultDataDir         = ".randwalk"
)

// Registry source kinds.
const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceRedis = "redis"
)

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Sketch   SketchConfig   `yaml:"sketch"`
	DataDir  string         `yaml:"data_dir"`
	LogLevel string         `yaml:"log_level"`
}

type RegistryConfig struct {
	Source        string `yaml:"source"`
	Path          string `yaml:"path"`
	URL           string `yaml:"url"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisKey      string `yaml:"redis_key"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

type SketchConfig struct {
	MessageInterval time.Duration `yaml:"message_interval"`
	DotSize         int           `yaml:"dot_size"`
	ShowStats       bool          `yaml:"show_stats"`
	FPS             int           `yaml:"fps"`
	Theme           string        `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Source:   SourceFile,
			Path:     DefaultRegistryPath,
			RedisKey: DefaultRedisKey,
		},
		Sketch: SketchConfig{
			MessageInterval: DefaultMessageInterval,
			DotSize:         DefaultDotSize,
			ShowStats:       true,
			FPS:             DefaultFPS,
			Theme:           DefaultTheme,
		},
		DataDir:  DefaultDataDir,
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the Config for correctness.
func (c *Config) Validate() error {
	switch c.Registry.Source {
	case SourceFile:
		if c.Registry.Path == "" {
			return fmt.Errorf("registry path must not be empty")
		}
	case SourceHTTP:
		if c.Registry.URL == "" {
			return fmt.Errorf("registry url must not be empty")
		}
	case SourceRedis:
		if c.Registry.RedisAddr == "" || c.Registry.RedisKey == "" {
			return fmt.Errorf("redis registry needs both an address and a key")
		}
	default:
		return fmt.Errorf("unknown registry source: %s", c.Registry.Source)
	}
	if c.Sketch.MessageInterval < 0 {
		return fmt.Errorf("message interval must be non-negative, got %s", c.Sketch.MessageInterval)
	}
	if c.Sketch.DotSize <= 0 {
		return fmt.Errorf("dot size must be positive, got %d", c.Sketch.DotSize)
	}
	if c.Sketch.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Sketch.FPS)
	}
	if _, ok := Themes[c.Sketch.Theme]; !ok {
		return fmt.Errorf("unknown theme: %s", c.Sketch.Theme)
	}
	return nil
}
