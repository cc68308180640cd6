package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"showroom/internal/app"
	"showroom/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	envFile := flag.String("env", ".env", "dotenv file loaded before SHOWROOM_* overrides")
	flag.Parse()

	// Flag paths are relative to where the user ran the binary.
	for _, p := range []*string{configPath, envFile} {
		if *p != "" {
			if abs, err := filepath.Abs(*p); err == nil {
				*p = abs
			}
		}
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.WithError(err).WithField("dir", execDir).Warn("Showroom: staying in working directory, relative asset paths may not resolve")
			}
		}
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.WithError(err).Fatal("Config: invalid")
	}
	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("Config: logger")
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("App: setup failed")
	}
	if err := a.Run(); err != nil {
		logger.WithError(err).Fatal("App: stopped")
	}
}
