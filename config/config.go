package config

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port   int          `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Gantt  GanttConfig  `mapstructure:"gantt"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	BodyLimit    int `mapstructure:"body_limit"`
	MaxProcesses int `mapstructure:"max_processes"`
}

type GanttConfig struct {
	DefaultColor string `mapstructure:"default_color"`
}

const envPrefix = "CPUSCHED"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.max_processes", 1000)
	v.SetDefault("gantt.default_color", "#4CAF50")
}

// Load reads configuration from path, or from config.yaml in ./ or ./config when path
// is empty. A missing default file is not an error. CPUSCHED_* environment variables
// override file values, e.g. CPUSCHED_LOG_LEVEL for log.level.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	cfg := &SchedulerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	if c.Server.MaxProcesses <= 0 {
		return errors.Errorf("server.max_processes must be positive, got %d", c.Server.MaxProcesses)
	}
	if c.Server.BodyLimit <= 0 {
		return errors.Errorf("server.body_limit must be positive, got %d", c.Server.BodyLimit)
	}
	return nil
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads the default configuration once per process.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})

	return config, configErr
}
