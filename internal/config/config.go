package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Env  string `validate:"required"`
	Port string `validate:"required,numeric"`
}

type UpstreamCfg struct {
	BaseURL    string        `validate:"required,url"`
	Timeout    time.Duration `validate:"gt=0"`
	MaxRetries int           `validate:"gte=0,lte=10"`
}

type CacheCfg struct {
	Backend   string        `validate:"oneof=memory redis postgres"`
	TTL       time.Duration `validate:"gte=0"`
	Prefix    string
	WarmPages int           `validate:"gte=0"`
	WarmEvery time.Duration `validate:"gt=0"`
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

type DBCfg struct{ DSN string }

type LogCfg struct {
	Level     string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format    string `validate:"oneof=json console"`
	File      string
	MaxSizeMB int `validate:"gt=0"`
}

type UICfg struct {
	PageSize   int           `validate:"gte=1,lte=100"`
	RenderWait time.Duration `validate:"gte=0"`
}

type Cfg struct {
	App      AppCfg
	Upstream UpstreamCfg
	Cache    CacheCfg
	Redis    RedisCfg
	DB       DBCfg
	Log      LogCfg
	UI       UICfg
}

// Load reads the configuration and exits the process when it is invalid.
func Load() Cfg {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load(".env")

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// FromEnv builds a Cfg from environment variables and validates it.
func FromEnv() (Cfg, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2")
	v.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)
	v.SetDefault("UPSTREAM_MAX_RETRIES", 3)
	v.SetDefault("PAGE_SIZE", 20)
	v.SetDefault("RENDER_WAIT", "3s")
	v.SetDefault("CACHE_BACKEND", "memory")
	v.SetDefault("CACHE_TTL", "24h")
	v.SetDefault("CACHE_PREFIX", "pokedex:")
	v.SetDefault("CACHE_WARM_PAGES", 0)
	v.SetDefault("CACHE_WARM_EVERY", "30m")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)

	cfg := Cfg{
		App: AppCfg{
			Env:  v.GetString("APP_ENV"),
			Port: v.GetString("APP_PORT"),
		},
		Upstream: UpstreamCfg{
			BaseURL:    strings.TrimRight(v.GetString("POKEAPI_BASE_URL"), "/"),
			Timeout:    time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SEC")) * time.Second,
			MaxRetries: v.GetInt("UPSTREAM_MAX_RETRIES"),
		},
		Cache: CacheCfg{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString("CACHE_BACKEND"))),
			TTL:       v.GetDuration("CACHE_TTL"),
			Prefix:    v.GetString("CACHE_PREFIX"),
			WarmPages: v.GetInt("CACHE_WARM_PAGES"),
			WarmEvery: v.GetDuration("CACHE_WARM_EVERY"),
		},
		Redis: RedisCfg{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DB: DBCfg{DSN: v.GetString("DB_DSN")},
		Log: LogCfg{
			Level:     strings.ToLower(v.GetString("LOG_LEVEL")),
			Format:    strings.ToLower(v.GetString("LOG_FORMAT")),
			File:      v.GetString("LOG_FILE"),
			MaxSizeMB: v.GetInt("LOG_MAX_SIZE_MB"),
		},
		UI: UICfg{
			PageSize:   v.GetInt("PAGE_SIZE"),
			RenderWait: v.GetDuration("RENDER_WAIT"),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks field constraints and the settings each cache backend needs.
func (c Cfg) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config: %w", err)
	}

	switch c.Cache.Backend {
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("config: REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	case "postgres":
		if c.DB.DSN == "" {
			return errors.New("config: DB_DSN is required when CACHE_BACKEND=postgres")
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Cfg) Addr() string {
	return ":" + c.App.Port
}
