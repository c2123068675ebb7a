package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	OpenRouter OpenRouterConfig
	SMTP       SMTPConfig
	Storage    StorageConfig
	Quota      QuotaConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

// OpenRouterConfig holds the credentials for the primary and fallback
// text-generation models. Both keys must be present before any call is made.
type OpenRouterConfig struct {
	BaseURL        string
	PrimaryModel   string
	PrimaryAPIKey  string
	FallbackModel  string
	FallbackAPIKey string
	Referer        string
	AppTitle       string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type StorageConfig struct {
	UploadDir string
}

type QuotaConfig struct {
	GuestQuizLimit  int
	GuestQuizWindow time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey:      viper.GetString("jwt.secret_key"),
			AccessTokenTTL: viper.GetDuration("jwt.access_token_ttl"),
		},
		OpenRouter: OpenRouterConfig{
			BaseURL:        viper.GetString("openrouter.base_url"),
			PrimaryModel:   viper.GetString("openrouter.primary_model"),
			PrimaryAPIKey:  viper.GetString("openrouter.primary_api_key"),
			FallbackModel:  viper.GetString("openrouter.fallback_model"),
			FallbackAPIKey: viper.GetString("openrouter.fallback_api_key"),
			Referer:        viper.GetString("openrouter.referer"),
			AppTitle:       viper.GetString("openrouter.app_title"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
			FromName: viper.GetString("smtp.from_name"),
		},
		Storage: StorageConfig{
			UploadDir: viper.GetString("storage.upload_dir"),
		},
		Quota: QuotaConfig{
			GuestQuizLimit:  viper.GetInt("quota.guest_quiz_limit"),
			GuestQuizWindow: viper.GetDuration("quota.guest_quiz_window"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if key := os.Getenv("OPENROUTER_PRIMARY_KEY"); key != "" {
		config.OpenRouter.PrimaryAPIKey = key
	}
	if key := os.Getenv("OPENROUTER_FALLBACK_KEY"); key != "" {
		config.OpenRouter.FallbackAPIKey = key
	}
	if pass := os.Getenv("SMTP_PASS"); pass != "" {
		config.SMTP.Password = pass
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("jwt.access_token_ttl", time.Hour)
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.primary_model", "deepseek/deepseek-chat-v3-0324:free")
	viper.SetDefault("openrouter.fallback_model", "meta-llama/llama-3.2-1b-instruct:free")
	viper.SetDefault("openrouter.app_title", "QuizForge")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("storage.upload_dir", "uploads/documents")
	viper.SetDefault("quota.guest_quiz_limit", 1)
	viper.SetDefault("quota.guest_quiz_window", 24*time.Hour)
	viper.SetDefault("logger.level", "info")
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
