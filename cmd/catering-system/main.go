package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catering-system/internal/app/dashboard"
	"catering-system/internal/app/notify"
	"catering-system/internal/app/report"
	"catering-system/internal/common/config"
	"catering-system/internal/common/logger"
)

func main() {
	mode := flag.String("mode", "", "dashboard-service | notification-subscriber | board-report")
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	port := flag.Int("port", 0, "dashboard-service: http port")
	demo := flag.Bool("demo", false, "use a seeded in-memory store instead of Postgres")
	prefetch := flag.Int("prefetch", 1, "notification-subscriber: RabbitMQ prefetch")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loadConfig := func() config.App {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			lg.Error("config_load_failed", err, map[string]any{"path": *cfgPath})
			os.Exit(1)
		}
		return cfg
	}

	switch *mode {
	case "dashboard-service":
		if *port == 0 {
			*port = 3000
		}
		cfg := dashboard.Config{Port: *port, Demo: *demo}
		if !*demo {
			cfg.App = loadConfig()
		}
		lg.Info("service_started", map[string]any{"service": "dashboard-service", "port": *port, "demo": *demo})
		if err := dashboard.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		if err := notify.Run(ctx, notify.Config{App: loadConfig(), Prefetch: *prefetch}); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "board-report":
		cfg := report.Config{Demo: *demo}
		if !*demo {
			cfg.App = loadConfig()
		}
		if err := report.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: dashboard-service | notification-subscriber | board-report")
		os.Exit(2)
	}
}
