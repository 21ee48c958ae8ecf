package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/config"
	"github.com/infinityCounter2/basis-stream/internal/logger"
	"github.com/infinityCounter2/basis-stream/internal/logic"
	"github.com/infinityCounter2/basis-stream/internal/persistence"
	"github.com/infinityCounter2/basis-stream/internal/publish"
	"github.com/infinityCounter2/basis-stream/internal/registry"
	"github.com/infinityCounter2/basis-stream/internal/server"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config Error: %s\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger Error: %s\n", err)
		os.Exit(2)
	}

	os.Exit(finish(log, run(cfg, log)))
}

// finish logs how run ended and flushes the logger, returning the exit
// code. os.Exit skips deferred calls so the flush has to happen here.
func finish(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("Basis stream stopped with error", zap.Error(err))
		code = 1
	} else {
		log.Info("Basis stream shutdown gracefully")
	}
	_ = log.Sync()
	return code
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	regParams, err := cfg.Instruments.RegistryParams()
	if err != nil {
		return fmt.Errorf("instruments: %w", err)
	}
	clock, err := cfg.Session.Clock()
	if err != nil {
		return fmt.Errorf("session windows: %w", err)
	}

	reg, err := registry.New(regParams)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	log.Info("Subscribing to instrument codes", zap.Strings("codes", reg.Codes()))

	g, ctx := errgroup.WithContext(ctx)

	var sink logic.PointSink
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			// Publishing is best effort; points are still served locally.
			log.Warn("Redis unreachable, publishing will retry per point",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err),
			)
		}
		pingCancel()

		pub := publish.NewRedisPublisher(publish.RedisParams{
			Client:        client,
			ChannelPrefix: cfg.Redis.ChannelPrefix,
			Logger:        log,
		})
		g.Go(func() error {
			pub.Run(ctx)
			return nil
		})
		sink = pub
	}

	engine := logic.NewEngine(logic.EngineParams{
		Registry: reg,
		Logger:   log,
		Sink:     sink,
	})

	if cfg.Persistence.Enabled {
		mgr := persistence.NewManager(persistence.Params{
			Dir:           cfg.Persistence.Dir,
			Interval:      cfg.Persistence.SaveInterval,
			RetentionDays: cfg.Persistence.RetentionDays,
			Session:       clock,
			Logger:        log,
		})

		now := engine.Now()
		snap, found, err := mgr.Load(now)
		switch {
		case err != nil:
			// A corrupt file must not keep the day from starting.
			log.Error("Failed to load today's snapshot, starting empty", zap.Error(err))
		case found:
			engine.Load(logic.DayKey(now), snap)
		default:
			log.Info("No snapshot for today, starting empty", zap.String("path", mgr.Path(now)))
		}

		g.Go(func() error {
			mgr.Run(ctx, engine)
			return nil
		})
	}

	srv := server.NewServer(server.Params{
		Port:         cfg.Server.Port,
		Engine:       engine,
		Logger:       log,
		PushInterval: cfg.Server.PushInterval,
		PingInterval: cfg.Server.PingInterval,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	g.Go(func() error {
		return srv.Run(ctx)
	})

	log.Info("Basis stream started",
		zap.Int("port", cfg.Server.Port),
		zap.Int("contracts", len(reg.Contracts())),
		zap.Bool("persistence", cfg.Persistence.Enabled),
		zap.Bool("redis", sink != nil),
	)

	return g.Wait()
}
