package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL        = "localhost:8080"
	DefaultImageMaxSizeMB = 5
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

type Config struct {
	// Server-side settings
	DatabaseDSN    string `env:"DATABASE_URI"`
	ImageMaxSizeMB int    `env:"IMAGE_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL  string `env:"-"`
	TenantFile string `env:"TENANT_FILE"`
	Version    bool   `env:"-"` // show client version and exit (flag only)
	Debug      bool   `env:"TODO_DEBUG"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто — хранение в памяти)")
	flag.IntVar(&cfg.ImageMaxSizeMB, "image-max-mb", cfg.ImageMaxSizeMB, "максимальный размер картинки, MB")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the TodoList server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: use https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TenantFile, "tenant-file", cfg.TenantFile, "path to tenant id file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug-логи клиента")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	// BaseURL только в виде "address:port" (без схемы и пути), иначе дефолт
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.ImageMaxSizeMB <= 0 {
		cfg.ImageMaxSizeMB = DefaultImageMaxSizeMB
	}

	if cfg.TenantFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.TenantFile = filepath.Join(dir, "TodoList", "tenant_id")
	}
}

// ImageMaxSize возвращает лимит картинки в байтах
func (cfg *Config) ImageMaxSize() int64 {
	return int64(cfg.ImageMaxSizeMB) << 20
}
