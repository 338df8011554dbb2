package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xPexy/sentra-gas-station/internal/admin"
	"github.com/0xPexy/sentra-gas-station/internal/auth"
	cfgpkg "github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/0xPexy/sentra-gas-station/internal/server"
	"github.com/0xPexy/sentra-gas-station/internal/signer"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/0xPexy/sentra-gas-station/internal/store"
	"github.com/0xPexy/sentra-gas-station/internal/store/memstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and event hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cfgpkg.Load()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func openStore(cfg cfgpkg.DatabaseConfig, log *zap.Logger) (station.Store, error) {
	switch cfg.Driver {
	case cfgpkg.DriverMemory:
		log.Warn("using in-memory store; state is lost on restart")
		return memstore.New(), nil
	case cfgpkg.DriverSQLite:
		db, err := store.OpenSQLite(cfg.SQLiteDSN, log)
		if err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		return store.NewRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Driver)
	}
}

func serve(ctx context.Context, cfg cfgpkg.Config, log *zap.Logger) error {
	st, err := openStore(cfg.Database, log)
	if err != nil {
		return err
	}
	sig, err := signer.NewLocal(cfg.Signer.RootKey)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hub := server.NewEventHub(log.Named("events"))
	authorizer := station.OwnerAuthorizer{Owner: cfg.Admin.Address}
	gs := station.New(station.Options{
		Store:      st,
		Authorizer: authorizer,
		Signer:     sig,
		Publisher:  hub,
		Owner:      cfg.Admin.Address,
		Logger:     log.Named("station"),
		Registerer: reg,
	})

	if cfg.Database.SeedFile != "" {
		seed, err := store.LoadSeedFile(cfg.Database.SeedFile)
		if err != nil {
			return err
		}
		if err := store.EnsureSeed(ctx, gs, cfg.Admin.Address, seed, log.Named("seed")); err != nil {
			return err
		}
	}

	authSvc := auth.NewService(cfg.Auth, cfg.Admin.Address)
	router := server.NewRouter(cfg, server.Deps{
		Station:    gs,
		Authorizer: authorizer,
		Auth:       authSvc,
		Admin:      admin.NewHandler(authSvc, gs, authorizer, log.Named("admin")),
		Hub:        hub,
		Gatherer:   reg,
		Logger:     log.Named("http"),
	})
	srv := server.NewHTTP(cfg.Server.HTTPAddr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(gctx) })
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.Server.HTTPAddr), zap.String("store", cfg.Database.Driver))
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdown)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
