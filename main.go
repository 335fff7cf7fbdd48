package main

import (
	"os"

	"github.com/ternarybob/banner"

	"country-bonds/app"
	"country-bonds/config"
	"country-bonds/logging"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	printBanner(version)

	// Load config from .env, environment and feeds.toml
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logging.GetLogger().Error().Err(err).Msg("Configuration error")
		os.Exit(1)
	}
	logger := logging.InitLogger(cfg.LogLevel)

	// Create and start app
	application := app.New(cfg, logger)
	if err := application.Start(); err != nil {
		logger.Error().Err(err).Msg("Application stopped with error")
		os.Exit(1)
	}
}

func printBanner(version string) {
	b := banner.New().SetStyle(banner.StyleRound).SetBold(true)
	b.PrintTopLine()
	b.PrintCenteredText("Country Bonds")
	b.PrintCenteredText("news-driven country price index")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", version, 10)
	b.PrintBottomLine()
}
