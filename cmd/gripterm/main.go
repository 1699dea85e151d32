// Command gripterm runs the region editor in a terminal. Drag a corner with
// the mouse to resize, drag the middle to move and click to toggle the grips.
// Arrow keys and space drive a keyboard pointer; 'a' toggles the aspect lock.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/soocke/gripframe/config"
	"github.com/soocke/gripframe/ui/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gripterm:", err)
		os.Exit(1)
	}
}

func run() error {
	defPath, err := config.DefaultPath()
	if err != nil {
		defPath = "gripframe.json"
	}
	cfgPath := flag.String("config", defPath, "config file (.json, .yaml or .yml)")
	logPath := flag.String("log", "", "write JSON logs to this file")
	aspect := flag.Bool("aspect", false, "start with the aspect ratio locked")
	flag.Parse()

	var w io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	opts := term.DefaultOptions()
	opts.Engine.AspectLock = cfg.AspectLock || *aspect
	opts.Gesture.MaxTap = cfg.GestureOptions().MaxTap
	opts.StrokeColor = cfg.StrokeColor
	opts.GripStrokeColor = cfg.GripStrokeColor
	opts.GripFillColor = cfg.GripFillColor

	var cue term.Cue = term.NopCue{}
	if cfg.Sound {
		if tc, err := term.NewToneCue(880); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer tc.Close()
			cue = tc
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	host := term.NewHost(screen, opts, cue, nil, logger)
	err = host.Run(ctx)
	logger.Info("exit", "frame", host.Engine.Frame())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
