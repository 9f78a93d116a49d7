package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var (
	ErrMissingPaddleURL = errors.New("ocr.paddle_url is not configured")
	ErrUnknownOCRBackend = errors.New("unknown ocr backend kind")
)

// Config is the root application configuration, loaded by LoadConfig from
// config.yaml plus environment variable overrides.
type Config struct {
	Database struct {
		Vector struct {
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"vector"`
	} `mapstructure:"database"`

	Embedding struct {
		Provider     string `mapstructure:"provider"`
		Model        string `mapstructure:"model"`
		OpenAIAPIKey string `mapstructure:"openai_api_key"`
		Dimension    int    `mapstructure:"dimension"`
	} `mapstructure:"embedding"`

	Chunking struct {
		MaxTokens         int      `mapstructure:"max_tokens"`
		Overlap           int      `mapstructure:"overlap"`
		Separators        []string `mapstructure:"separators"`
		ProtectedPatterns []string `mapstructure:"protected_patterns"`
		LenFunc           string   `mapstructure:"len_function"` // "chars", "words", or "sentences"
	} `mapstructure:"chunking"`

	OCR struct {
		Backend      string `mapstructure:"backend"` // "dummy", "paddle", "vlm"
		PaddleURL    string `mapstructure:"paddle_url"`
		VLMModel     string `mapstructure:"vlm_model"`
		VLMAPIKey    string `mapstructure:"vlm_api_key"`
		VLMBaseURL   string `mapstructure:"vlm_base_url"`
	} `mapstructure:"ocr"`

	Storage struct {
		LocalDir string `mapstructure:"local_dir"`
		MinIO    struct {
			Endpoint        string `mapstructure:"endpoint"`
			AccessKeyID     string `mapstructure:"access_key_id"`
			SecretAccessKey string `mapstructure:"secret_access_key"`
			BucketName      string `mapstructure:"bucket_name"`
			UseSSL          bool   `mapstructure:"use_ssl"`
			PublicURL       string `mapstructure:"public_url"`
		} `mapstructure:"minio"`
	} `mapstructure:"storage"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

// LoadConfig reads config.yaml from the current directory (if present) and
// overlays environment variables on top of it, matching the teacher's
// config-file-optional, env-fallback loading style.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.BindEnv("embedding.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("ocr.vlm_api_key", "OCR_VLM_API_KEY")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("chunking.max_tokens", 1000)
	viper.SetDefault("chunking.overlap", 100)
	viper.SetDefault("chunking.len_function", "chars")
	viper.SetDefault("embedding.provider", "openai")
	viper.SetDefault("embedding.model", "text-embedding-3-small")
	viper.SetDefault("embedding.dimension", 1536)
	viper.SetDefault("ocr.backend", "dummy")
	viper.SetDefault("storage.local_dir", "./data/uploads")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 10)
	viper.SetDefault("worker.queues", map[string]int{"default": 1, "parsing": 2, "ocr": 1})
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
}
