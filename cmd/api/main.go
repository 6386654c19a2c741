package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"addressbook-api/internal/app"
	"addressbook-api/internal/config"
	"addressbook-api/internal/handler"
	"addressbook-api/internal/logger"
	"addressbook-api/internal/metrics"
	"addressbook-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title           Address Book API
// @version         1.0
// @description     Stores people with one geocoded postal address each and finds them by distance.
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logFile, err := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up logging")
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	application, err := app.Build(ctx, cfg, m)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize application")
	}
	defer application.Close()

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(handler.NewAddressHandler(application.Service), prometheus.DefaultGatherer)
	srv := server.New(cfg.ServerAddress(), router, cfg.KeepAliveTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
