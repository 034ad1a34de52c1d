package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"hotedge/command"
	"hotedge/config"
	"hotedge/platform"
	"hotedge/storage"
	"hotedge/systray"
	"hotedge/web"
	"hotedge/zone"
)

// maxDelay caps the pre-dispatch delay.
const maxDelay = time.Second

type daemonOptions struct {
	flagCommands map[string]string
	noBlocking   bool
	useConfig    bool
	verbose      bool
	delayMs      int
	delaySet     bool
}

// resolveCommands merges CLI flag commands with the config file. In
// use-config mode a non-blank config value wins over the flag value for the
// same zone.
func resolveCommands(flagCommands, configCommands map[string]string, useConfig bool) (map[zone.Zone]string, error) {
	raw := make(map[zone.Zone]string)

	for key, value := range flagCommands {
		z, err := zone.Parse(key)
		if err != nil {
			return nil, err
		}
		raw[z] = value
	}

	if useConfig {
		for key, value := range configCommands {
			z, err := zone.Parse(key)
			if err != nil {
				return nil, fmt.Errorf("config file: %w", err)
			}
			if strings.TrimSpace(value) != "" {
				raw[z] = value
			}
		}
	}

	return raw, nil
}

func runDaemon(ctx context.Context, opts daemonOptions) error {
	setupLogging(opts.verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	configPath, _ := config.Path()
	slog.Info("configuration loaded", "path", configPath)

	raw, err := resolveCommands(opts.flagCommands, cfg.Commands, opts.useConfig)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("no commands bound; pass --top-left CMD etc. or --use-config")
	}
	bindings, err := command.NewBindings(raw)
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	lock, err := acquireLock(dir)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	interval := time.Duration(cfg.Pointer.PollIntervalMs) * time.Millisecond
	source, err := platform.NewX11Source(interval)
	if err != nil {
		return err
	}
	defer source.Close()

	monitors, err := source.Monitors()
	if err != nil {
		return err
	}
	slog.Info("monitors detected", "count", len(monitors))

	classifier, err := zone.NewClassifier(monitors, cfg.Pointer.BandFraction)
	if err != nil {
		return err
	}

	delay := time.Duration(cfg.Exec.DelayMs) * time.Millisecond
	if opts.delaySet {
		delay = time.Duration(opts.delayMs) * time.Millisecond
	}
	if delay > maxDelay {
		delay = maxDelay
	}
	blocking := cfg.Exec.Blocking
	if opts.noBlocking {
		blocking = false
	}

	agent := &Agent{
		source:     source,
		classifier: classifier,
		tracker:    zone.NewTracker(classifier),
		bindings:   bindings,
		runner:     &command.Runner{Blocking: blocking},
		delay:      delay,
	}

	if cfg.History.Enabled {
		db, err := storage.Open(dir)
		if err != nil {
			return err
		}
		defer db.Close()
		agent.db = db
	}

	if cfg.Web.Enabled {
		agent.server = web.NewServer(agent.db, bindings, agent.Status, cfg.Web.Port)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return agent.Run(gctx)
	})
	if agent.server != nil {
		g.Go(func() error {
			return agent.server.Start(gctx)
		})
	}

	if cfg.Tray.Enabled {
		tray := systray.NewManager(cfg.Web.Enabled, cfg.Web.Port, nil, agent.SetPaused)
		go func() {
			select {
			case <-tray.WaitForQuit():
				cancel()
			case <-gctx.Done():
				tray.Stop()
			}
		}()
		// Blocks the main goroutine; the GTK loop requires it.
		tray.Run()
	}

	err = g.Wait()
	slog.Info("hotedge stopped")
	return err
}
