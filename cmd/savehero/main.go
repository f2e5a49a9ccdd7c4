package main

import (
	"log"

	"github.com/LeonardoLujan/gamified-savings-app/internal/app"
	"github.com/LeonardoLujan/gamified-savings-app/internal/config"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
