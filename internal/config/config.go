package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Ideas    IdeasConfig    `yaml:"ideas"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// IdeasConfig holds idea submission and evaluation queue settings.
type IdeasConfig struct {
	MaxPerOwner       int `yaml:"max_per_owner"       env:"IDEAS_MAX_PER_OWNER"       env-default:"1000"`
	QueueDefaultLimit int `yaml:"queue_default_limit" env:"IDEAS_QUEUE_DEFAULT_LIMIT" env-default:"50"`
	QueueMaxLimit     int `yaml:"queue_max_limit"     env:"IDEAS_QUEUE_MAX_LIMIT"     env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
