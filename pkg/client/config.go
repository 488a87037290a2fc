package client

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the client needs to reach the profile service.
type Config struct {
	// APIURL is the base URL of the profile API.
	APIURL string `env:"PROFILE_API_URL,required"`
	// AppName identifies the collecting application; also scopes the
	// settings cache key.
	AppName string `env:"PROFILE_APP_NAME,required"`
	// AppKey authenticates requests.
	AppKey string `env:"PROFILE_APP_KEY,required"`
	// GroupID is the company/group the bucket belongs to.
	GroupID string `env:"PROFILE_GROUP_ID,required"`
	// BucketName is the bucket holding the profiles.
	BucketName string `env:"PROFILE_BUCKET_NAME,required"`
	// EvaluationURL is the segment evaluation endpoint; defaults to APIURL.
	EvaluationURL string `env:"PROFILE_EVALUATION_URL"`
	// SchedulerURL is the task scheduler endpoint; defaults to APIURL.
	SchedulerURL string `env:"PROFILE_SCHEDULER_URL"`
	// CacheTTL bounds how long settings/attribute responses are reused.
	CacheTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"600s"`
	// NoCache disables response caching entirely.
	NoCache bool `env:"PROFILE_NO_CACHE" envDefault:"false"`
}

// Validate checks that all required fields are present. Each error names
// the missing field.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.APIURL) == "":
		return ErrMissingAPIURL
	case strings.TrimSpace(c.AppName) == "":
		return ErrMissingAppName
	case strings.TrimSpace(c.AppKey) == "":
		return ErrMissingAppKey
	case strings.TrimSpace(c.GroupID) == "":
		return ErrMissingGroupID
	case strings.TrimSpace(c.BucketName) == "":
		return ErrMissingBucketName
	}
	return nil
}

// LoadConfig reads the configuration from environment variables, loading a
// .env file first when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration from a YAML file. Durations use
// the Go syntax ("600s", "10m").
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	// yaml.v3 has no native time.Duration support, so the TTL travels as a
	// string and is parsed explicitly.
	var file struct {
		APIURL        string `yaml:"api_url"`
		AppName       string `yaml:"app_name"`
		AppKey        string `yaml:"app_key"`
		GroupID       string `yaml:"group_id"`
		BucketName    string `yaml:"bucket_name"`
		EvaluationURL string `yaml:"evaluation_url"`
		SchedulerURL  string `yaml:"scheduler_url"`
		CacheTTL      string `yaml:"cache_ttl"`
		NoCache       bool   `yaml:"no_cache"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Config{
		APIURL:        file.APIURL,
		AppName:       file.AppName,
		AppKey:        file.AppKey,
		GroupID:       file.GroupID,
		BucketName:    file.BucketName,
		EvaluationURL: file.EvaluationURL,
		SchedulerURL:  file.SchedulerURL,
		CacheTTL:      600 * time.Second,
		NoCache:       file.NoCache,
	}
	if file.CacheTTL != "" {
		ttl, err := time.ParseDuration(file.CacheTTL)
		if err != nil {
			return Config{}, fmt.Errorf("parse cache_ttl: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
