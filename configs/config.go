package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Store    `mapstructure:"store"`
	Redis    `mapstructure:"redis"`
	Postgres `mapstructure:"postgres"`
	Session  `mapstructure:"session"`
	Catalog  `mapstructure:"catalog"`
}

// App struct
type App struct {
	Debug    bool   `mapstructure:"debug"`
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// Store struct - selects the document store backend.
// Driver is one of redis, postgres or memory; Timeout is in seconds.
type Store struct {
	Driver  string `mapstructure:"driver"`
	Timeout int    `mapstructure:"timeout"`
}

// Redis struct
type Redis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Session struct - MaxAge is the cookie lifetime and HistoryTTL the
// store-side expiry of a read history, both in seconds. 0 disables HistoryTTL.
type Session struct {
	CookieName string `mapstructure:"cookie_name"`
	MaxAge     int    `mapstructure:"max_age"`
	HistoryTTL int    `mapstructure:"history_ttl"`
}

// Catalog struct - SeedDir holds book<id>.html files loaded at startup
type Catalog struct {
	SeedDir string `mapstructure:"seed_dir"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.port", "8000")
	viper.SetDefault("app.env", "local")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("store.driver", "redis")
	viper.SetDefault("store.timeout", 3)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("session.cookie_name", "session")
	viper.SetDefault("session.max_age", 100)
	viper.SetDefault("session.history_ttl", 0)
	viper.SetDefault("catalog.seed_dir", "")
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	if env != "" {
		viper.Set("app.env", env)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Warnln("Config file has changed, restart to apply: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
