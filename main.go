package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/gripframe/app"
	"github.com/soocke/gripframe/config"
	"github.com/soocke/gripframe/debug"
)

func main() {
	defPath, err := config.DefaultPath()
	if err != nil {
		defPath = "gripframe.json"
	}
	cfgPath := flag.String("config", defPath, "config file (.json, .yaml or .yml)")
	debugFlag := flag.Bool("debug", false, "log debug output and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(os.Stderr, level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if cfg.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		debug.StartStatsLogger(ctx, 5*time.Second, logger)
	}

	application := app.NewApp("Gripframe", 900, 720, cfg, *cfgPath, logger)
	application.Start()
}
