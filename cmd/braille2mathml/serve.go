package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boynton/mathbraille"
	"github.com/boynton/mathbraille/internal/api"
	"github.com/boynton/mathbraille/internal/config"
	"github.com/boynton/mathbraille/internal/logging"
	cli "github.com/jawher/mow.cli"
)

func cmdServe(cmd *cli.Cmd) {
	port := cmd.StringOpt("p port", "", "listen port (overrides PORT)")

	cmd.Action = func() {
		cfg := config.Load()
		if *port != "" {
			cfg.Port = *port
		}
		log := logging.Init(cfg.LogJSON, logging.ParseLevel(cfg.LogLevel))
		if err := cfg.Validate(); err != nil {
			log.Error("invalid configuration", "error", err)
			cli.Exit(1)
		}

		opts := []mathbraille.Option{
			mathbraille.WithLogger(log),
			mathbraille.WithMaxCells(cfg.MaxInputCells),
		}
		if cfg.MathMLConfig != "" {
			conf, err := mathbraille.DataFromFile(cfg.MathMLConfig)
			if err != nil {
				log.Error("cannot read MathML configuration", "path", cfg.MathMLConfig, "error", err)
				cli.Exit(1)
			}
			opts = append(opts, mathbraille.WithConfig(conf))
		}

		srv, err := api.NewServer(mathbraille.NewTranslator(opts...), log, cfg)
		if err != nil {
			log.Error("cannot build server", "error", err)
			cli.Exit(1)
		}

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting braille2mathml", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			cli.Exit(1)
		}
	}
}
