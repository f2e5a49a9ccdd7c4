package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress    = ":8080"
	DefaultDatabaseURI   = ""
	DefaultVisionAPIURL  = "https://vision.googleapis.com"
	DefaultVisionAPIKey  = ""
	DefaultPassCost      = 3
	DefaultSecretKey     = "secret"
	DefaultTokenLifetime = 3 * time.Hour
	DefaultWatchInterval = 5 * time.Second
)

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	VisionAPIURL  string        `env:"VISION_API_URL"`
	VisionAPIKey  string        `env:"VISION_API_KEY"`
	PassCost      int           `env:"PASS_COST"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.VisionAPIURL, "o", DefaultVisionAPIURL, "Text detection service address protocol://hostname:port")
	flag.StringVar(&config.VisionAPIKey, "k", DefaultVisionAPIKey, "Text detection service API key")

	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")
	flag.DurationVar(&config.WatchInterval, "w", DefaultWatchInterval, "Reward state watcher poll interval")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
