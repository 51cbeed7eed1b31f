package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file named by CONFIG_PATH, and finally environment variables.
type Config struct {
	ServerPort  string `yaml:"server_port"`
	AppEnv      string `yaml:"app_env"`
	LogLevel    string `yaml:"log_level"`
	SwaggerHost string `yaml:"swagger_host"`

	DBDriver    string `yaml:"db_driver"`
	DatabaseDSN string `yaml:"database_dsn"`
	ResetDB     bool   `yaml:"reset_db"`

	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	RedisPass string `yaml:"redis_password"`

	IdentityCacheTTL       time.Duration `yaml:"identity_cache_ttl"`
	RecommendationCacheTTL time.Duration `yaml:"recommendation_cache_ttl"`

	LLMAPIKey  string        `yaml:"llm_api_key"`
	LLMBaseURL string        `yaml:"llm_base_url"`
	LLMModel   string        `yaml:"llm_model"`
	LLMTimeout time.Duration `yaml:"llm_timeout"`

	BcryptCost int `yaml:"bcrypt_cost"`

	SnapshotBackend string `yaml:"snapshot_backend"`
	SnapshotDir     string `yaml:"snapshot_dir"`
	S3Bucket        string `yaml:"s3_bucket"`
	S3Region        string `yaml:"s3_region"`
	S3Endpoint      string `yaml:"s3_endpoint"`
	S3AccessKey     string `yaml:"s3_access_key"`
	S3SecretKey     string `yaml:"s3_secret_key"`

	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		ServerPort:             "8080",
		AppEnv:                 "development",
		LogLevel:               "info",
		DBDriver:               "mysql",
		DatabaseDSN:            "user:password@tcp(localhost:3306)/internmatch?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:              "localhost:6379",
		IdentityCacheTTL:       5 * time.Minute,
		RecommendationCacheTTL: 0,
		LLMBaseURL:             "https://api.groq.com/openai/v1",
		LLMModel:               "llama-3.3-70b-versatile",
		LLMTimeout:             30 * time.Second,
		BcryptCost:             10,
		SnapshotBackend:        "file",
		SnapshotDir:            "profile_data",
		S3Bucket:               "profiles",
		S3Region:               "us-east-1",
		CORSAllowOrigins:       []string{"*"},
	}
}

// Load builds Config from defaults, the optional CONFIG_PATH file and the environment.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.SwaggerHost = getEnv("SWAGGER_HOST", c.SwaggerHost)

	c.DBDriver = getEnv("DB_DRIVER", c.DBDriver)
	c.DatabaseDSN = getEnv("MYSQL_DSN", c.DatabaseDSN)
	c.DatabaseDSN = getEnv("DATABASE_DSN", c.DatabaseDSN)
	c.ResetDB = getEnvBool("RESET_DB", c.ResetDB)

	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)
	c.RedisPass = getEnv("REDIS_PASSWORD", c.RedisPass)

	c.IdentityCacheTTL = getEnvDuration("IDENTITY_CACHE_TTL", c.IdentityCacheTTL)
	c.RecommendationCacheTTL = getEnvDuration("RECOMMENDATION_CACHE_TTL", c.RecommendationCacheTTL)

	c.LLMAPIKey = getEnv("GROQ_API_KEY", c.LLMAPIKey)
	c.LLMAPIKey = getEnv("LLM_API_KEY", c.LLMAPIKey)
	c.LLMBaseURL = getEnv("LLM_BASE_URL", c.LLMBaseURL)
	c.LLMModel = getEnv("LLM_MODEL", c.LLMModel)
	c.LLMTimeout = getEnvDuration("LLM_TIMEOUT", c.LLMTimeout)

	c.BcryptCost = getEnvInt("BCRYPT_COST", c.BcryptCost)

	c.SnapshotBackend = getEnv("SNAPSHOT_BACKEND", c.SnapshotBackend)
	c.SnapshotDir = getEnv("SNAPSHOT_DIR", c.SnapshotDir)
	c.S3Bucket = getEnv("S3_BUCKET", c.S3Bucket)
	c.S3Region = getEnv("S3_REGION", c.S3Region)
	c.S3Endpoint = getEnv("S3_ENDPOINT", c.S3Endpoint)
	c.S3AccessKey = getEnv("S3_ACCESS_KEY", c.S3AccessKey)
	c.S3SecretKey = getEnv("S3_SECRET_KEY", c.S3SecretKey)

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.CORSAllowOrigins = splitList(v)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
