//go:build linux

// hipkey-ibus is the Linux IBus engine daemon.
//
// It connects to ibus-daemon over the session bus and serves
// Vietnamese composition to any application with an input context.
//
// Installation:
//  1. Copy the binary somewhere stable, e.g. /usr/local/bin/hipkey-ibus
//  2. Run: hipkey-ibus -install
//  3. Restart IBus: ibus restart
//  4. Enable via ibus-setup or GNOME Settings > Keyboard > Input Sources
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hieple7985/hip-key/internal/config"
	"github.com/hieple7985/hip-key/internal/ibus"
	"github.com/hieple7985/hip-key/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: platform config dir)")
	installFlag := flag.Bool("install", false, "Install IBus component")
	uninstallFlag := flag.Bool("uninstall", false, "Uninstall IBus component")
	debugFlag := flag.Bool("debug", false, "Force debug logging")
	flag.Parse()

	if *installFlag {
		if err := ibus.InstallComponent(); err != nil {
			log.Fatalf("Failed to install: %v", err)
		}
		log.Println("Installed successfully. Run 'ibus restart' to load.")
		return
	}

	if *uninstallFlag {
		if err := ibus.UninstallComponent(); err != nil {
			log.Fatalf("Failed to uninstall: %v", err)
		}
		log.Println("Uninstalled successfully.")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("Failed to create data directories: %v", err)
	}

	logger, err := newLogger(cfg, *debugFlag)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Close()
	logging.SetDefault(logger)

	server := ibus.NewServer(cfg, logger)
	if err := server.Start(); err != nil {
		logger.Error("start failed", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	// Reload config on file changes so users can switch telex/vni
	// without restarting the daemon.
	loader := config.NewLoader(resolveConfigPath(*configPath))
	loader.OnChange(func(next *config.Config) {
		server.UpdateConfig(next)
	})
	if err := loader.Watch(); err != nil {
		logger.Warn("config watch unavailable", "error", err)
	}
	defer loader.Close()

	logger.Info("hipkey IBus engine started",
		"method", cfg.Input.Method,
		"dictionary", cfg.Dictionary.Enabled)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-sigChan:
			logger.Info("shutting down", "signal", sig.String())
			return
		case err := <-loader.Errors():
			logger.Warn("config reload failed", "error", err)
		}
	}
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	return config.ConfigPath()
}

func newLogger(cfg *config.Config, debug bool) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	if debug {
		level = logging.LevelDebug
	}

	format := logging.FormatText
	if cfg.Logging.Format == "json" {
		format = logging.FormatJSON
	}

	return logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Output:    cfg.Logging.Output,
		FilePath:  cfg.Logging.FilePath,
		Component: "hipkey-ibus",
	})
}
