package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Pass        string
	Name        string
	Path        string
	AutoMigrate bool
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Log struct {
	Level  string
	Format string
}

type Redis struct {
	Addr          string
	Password      string
	DB            int
	SnapshotKey   string
	SnapshotLimit int64
}

type Jobs struct {
	UserSnapshot string
}

type Bootstrap struct {
	AdminUsername string
	AdminPassword string
}

type Config struct {
	HTTP      HTTP
	DB        DB
	JWT       JWT
	Log       Log
	Redis     Redis
	Jobs      Jobs
	Bootstrap Bootstrap
}

// Load reads the YAML file at path (optional) on top of defaults, .env and
// BOARD_* environment variables.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := newViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v), nil
}

// Watch re-reads path on every write and passes the fresh Config to onChange.
func Watch(path string, onChange func(*Config)) error {
	if path == "" {
		return nil
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(fromViper(v))
	})
	v.WatchConfig()
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("board")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("backend.http.host", "0.0.0.0")
	v.SetDefault("backend.http.port", 3000)
	v.SetDefault("backend.db.driver", "mysql")
	v.SetDefault("backend.db.host", "127.0.0.1")
	v.SetDefault("backend.db.port", 3306)
	v.SetDefault("backend.db.user", "root")
	v.SetDefault("backend.db.pass", "")
	v.SetDefault("backend.db.name", "board_guard")
	v.SetDefault("backend.db.path", "board-guard.db")
	v.SetDefault("backend.db.auto_migrate", true)
	v.SetDefault("backend.jwt.issuer", "board-guard")
	v.SetDefault("backend.jwt.exp_min", 60)
	v.SetDefault("backend.log.level", "info")
	v.SetDefault("backend.log.format", "console")
	v.SetDefault("backend.redis.addr", "")
	v.SetDefault("backend.redis.db", 0)
	v.SetDefault("backend.redis.snapshot_key", "board-guard:users")
	v.SetDefault("backend.redis.snapshot_limit", 100)
	v.SetDefault("backend.jobs.user_snapshot", "*/10 * * * * *")
	v.SetDefault("backend.bootstrap.admin_username", "")
	v.SetDefault("backend.bootstrap.admin_password", "")
	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("backend.http.host"), Port: v.GetInt("backend.http.port")},
		DB: DB{
			Driver:      strings.ToLower(v.GetString("backend.db.driver")),
			Host:        v.GetString("backend.db.host"),
			Port:        v.GetInt("backend.db.port"),
			User:        v.GetString("backend.db.user"),
			Pass:        v.GetString("backend.db.pass"),
			Name:        v.GetString("backend.db.name"),
			Path:        v.GetString("backend.db.path"),
			AutoMigrate: v.GetBool("backend.db.auto_migrate"),
		},
		Log: Log{Level: v.GetString("backend.log.level"), Format: v.GetString("backend.log.format")},
		Redis: Redis{
			Addr:          v.GetString("backend.redis.addr"),
			Password:      v.GetString("backend.redis.password"),
			DB:            v.GetInt("backend.redis.db"),
			SnapshotKey:   v.GetString("backend.redis.snapshot_key"),
			SnapshotLimit: v.GetInt64("backend.redis.snapshot_limit"),
		},
		Jobs: Jobs{UserSnapshot: v.GetString("backend.jobs.user_snapshot")},
		Bootstrap: Bootstrap{
			AdminUsername: v.GetString("backend.bootstrap.admin_username"),
			AdminPassword: v.GetString("backend.bootstrap.admin_password"),
		},
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "mysql"
	}
	cfg.JWT.Secret = v.GetString("backend.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("backend.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "board-guard"
	}
	cfg.JWT.ExpMin = v.GetInt("backend.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	if cfg.Jobs.UserSnapshot == "" {
		cfg.Jobs.UserSnapshot = "*/10 * * * * *"
	}
	return cfg
}
