package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Supported storage drivers.
const (
	PostgresDriver = "postgres"
	RedisDriver    = "redis"
	BoltDriver     = "bolt"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit          string         `yaml:"git_commit" envconfig:"BKS_GIT_COMMIT"`
	GitTag             string         `yaml:"git_tag" envconfig:"BKS_GIT_TAG"`
	BuildTime          string         `yaml:"build_time" envconfig:"BKS_BUILD_TIME"`
	IsProduction       bool           `yaml:"is_production" envconfig:"BKS_IS_PRODUCTION"`
	LogLevel           zapcore.Level  `yaml:"log_level" envconfig:"BKS_LOG_LEVEL"`
	LogFolder          string         `yaml:"log_folder" envconfig:"BKS_LOG_FOLDER"`
	LogMaxSize         int            `yaml:"log_max_size" envconfig:"BKS_LOG_MAX_SIZE"`
	ProfilerEnable     bool           `yaml:"profiler_enable" envconfig:"BKS_PROFILER_ENABLE"`
	OpsEndpointsEnable bool           `yaml:"ops_endpoints_enable" envconfig:"BKS_OPS_ENDPOINTS_ENABLE"`
	Server             ServerConfig   `yaml:"server"`
	Storage            StorageConfig  `yaml:"storage"`
	Postgres           PostgresConfig `yaml:"postgres"`
	Redis              RedisConfig    `yaml:"redis"`
	BoltDB             BoltDBConfig   `yaml:"boltdb"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"BKS_SERVER_HOST"`
	Port            string        `yaml:"port" envconfig:"BKS_SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"BKS_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"BKS_SERVER_WRITE_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"BKS_SERVER_REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"BKS_SERVER_SHUTDOWN_TIMEOUT"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" envconfig:"BKS_STORAGE_DRIVER"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host" envconfig:"BKS_POSTGRES_HOST"`
	Port            string        `yaml:"port" envconfig:"BKS_POSTGRES_PORT"`
	User            string        `yaml:"user" envconfig:"BKS_POSTGRES_USER"`
	Password        string        `yaml:"password" json:"-" envconfig:"BKS_POSTGRES_PASSWORD"`
	Database        string        `yaml:"database" envconfig:"BKS_POSTGRES_DATABASE"`
	SSLMode         string        `yaml:"ssl_mode" envconfig:"BKS_POSTGRES_SSL_MODE"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"BKS_POSTGRES_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"BKS_POSTGRES_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"BKS_POSTGRES_CONN_MAX_LIFETIME"`
	SlowThreshold   time.Duration `yaml:"slow_threshold" envconfig:"BKS_POSTGRES_SLOW_THRESHOLD"`
	AutoMigrate     bool          `yaml:"auto_migrate" envconfig:"BKS_POSTGRES_AUTO_MIGRATE"`
}

// DSN builds the connection string understood by the pgx driver.
func (pc *PostgresConfig) DSN() string {
	sslMode := pc.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pc.Host, pc.Port, pc.User, pc.Password, pc.Database, sslMode)
}

type RedisConfig struct {
	Host          string        `yaml:"host" envconfig:"BKS_REDIS_HOST"`
	Port          string        `yaml:"port" envconfig:"BKS_REDIS_PORT"`
	DialTimeout   time.Duration `yaml:"dial_timeout" envconfig:"BKS_REDIS_DIAL_TIMEOUT"`
	ReadTimeout   time.Duration `yaml:"read_timeout" envconfig:"BKS_REDIS_READ_TIMEOUT"`
	WriteTimeout  time.Duration `yaml:"write_timeout" envconfig:"BKS_REDIS_WRITE_TIMEOUT"`
	PoolSize      int           `yaml:"pool_size" envconfig:"BKS_REDIS_POOL_SIZE"`
	PoolTimeout   time.Duration `yaml:"pool_timeout" envconfig:"BKS_REDIS_POOL_TIMEOUT"`
	Username      string        `yaml:"username" envconfig:"BKS_REDIS_USERNAME"`
	Password      string        `yaml:"password" json:"-" envconfig:"BKS_REDIS_PASSWORD"`
	DatabaseIndex int           `yaml:"db_index" envconfig:"BKS_REDIS_DATABASE_INDEX"`
}

type BoltDBConfig struct {
	FilePath   string        `yaml:"filepath" envconfig:"BKS_BOLTDB_FILE_PATH"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"BKS_BOLTDB_TIMEOUT"`
	BucketName string        `yaml:"bucket_name" envconfig:"BKS_BOLTDB_BUCKET_NAME"`
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	if err = yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environment variables into the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig sets defaults values for non provided parameters, applies
// build flags values if provided, then checks the mandatory settings.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.Server.Host) == 0 || len(config.Server.Port) == 0 {
		return errors.New("make sure to set valid server address and port in configuration file")
	}

	if config.LogFolder == "" {
		config.LogFolder = "./logs"
	}

	if config.LogMaxSize <= 0 {
		config.LogMaxSize = 10
	}

	if config.Server.RequestTimeout == 0 {
		config.Server.RequestTimeout = 30 * time.Second
	}

	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = 15 * time.Second
	}

	if config.Storage.Driver == "" {
		config.Storage.Driver = PostgresDriver
	}

	switch config.Storage.Driver {
	case PostgresDriver:
		if len(config.Postgres.Host) == 0 || len(config.Postgres.Port) == 0 || len(config.Postgres.Database) == 0 {
			return errors.New("make sure to set valid postgres address, port and database in configuration file")
		}
		if config.Postgres.SlowThreshold == 0 {
			config.Postgres.SlowThreshold = 200 * time.Millisecond
		}
	case RedisDriver:
		if len(config.Redis.Host) == 0 || len(config.Redis.Port) == 0 {
			return errors.New("make sure to set valid redis address and port in configuration file")
		}
	case BoltDriver:
		if len(config.BoltDB.FilePath) == 0 {
			return errors.New("make sure to set valid boltdb file path in configuration file")
		}
		if config.BoltDB.BucketName == "" {
			config.BoltDB.BucketName = "books"
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", config.Storage.Driver)
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data. The env file is optional.
func LoadAndInitConfigs(configFile, envFile, gitCommit, gitTag, buildTime string) (*Config, error) {
	config, err := LoadConfigFile(configFile)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	if envFile != "" {
		if err = godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return config, fmt.Errorf("failed to set environment configurations: %s", err)
		}
	}

	// Use environment variables with prefix `BKS`.
	err = LoadConfigEnvs("BKS", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
