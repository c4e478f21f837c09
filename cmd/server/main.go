package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/manzanit0/naver2google/pkg/env"
	"github.com/manzanit0/naver2google/pkg/logger"
	"github.com/manzanit0/naver2google/pkg/naver"
	"github.com/manzanit0/naver2google/pkg/resolver"
)

const ServiceName = "naver2google"

func main() {
	env.Load()

	level, err := env.LogLevel()
	if err != nil {
		panic(err)
	}

	logger.InitGlobalSlog(ServiceName, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server shutdown abruptly", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("server exited")
}

func run(ctx context.Context) error {
	timeout, err := env.UpstreamTimeout()
	if err != nil {
		return fmt.Errorf("read upstream timeout: %w", err)
	}

	naverClient := naver.NewClient(
		naver.PlaceAPIOption(env.PlaceAPI()),
		naver.TimeoutOption(timeout),
		naver.DebugOption(env.Debug()),
	)

	gin.SetMode(gin.ReleaseMode)
	r := newRouter(resolver.New(naverClient), env.Debug())

	port := env.Port()
	srv := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: r}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info(fmt.Sprintf("serving HTTP on :%s", port))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		slog.Info("server shutdown gracefully")
		return nil
	})

	return g.Wait()
}
