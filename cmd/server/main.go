package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"alumni/internal/auth"
	"alumni/internal/config"
	"alumni/internal/countdown"
	"alumni/internal/generator"
	"alumni/internal/handler"
	"alumni/internal/repository"
	"alumni/internal/session"
)

type CLI struct {
	Addr    string `help:"Listen address, overrides ADDR."`
	EnvFile string `help:"Dotenv file to load before reading the environment." default:".env" type:"path"`
	Verbose bool   `help:"Human readable debug logging."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("alumni"),
		kong.Description("Namal alumni network web app."),
	)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cli.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if err := godotenv.Load(cli.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Str("file", cli.EnvFile).Msg("could not load env file")
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cli CLI, logger zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}

	verifier, err := auth.NewDemoDirectory(auth.DemoAccounts(), cfg.LoginDelay, cfg.RegisterDelay)
	if err != nil {
		return err
	}
	asOf := cfg.FixturesAsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	events, err := repository.NewEventRepository(cfg.Location, asOf)
	if err != nil {
		return err
	}
	jobs, err := repository.NewJobRepository(cfg.Location, asOf)
	if err != nil {
		return err
	}
	stories, err := repository.NewStoryRepository()
	if err != nil {
		return err
	}
	alumni, err := repository.NewAlumniRepository()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := countdown.NewTicker(events.GetAll, cfg.CountdownInterval, logger)
	go ticker.Run(ctx)

	router, err := handler.NewRouter(handler.Deps{
		Config:    cfg,
		Logger:    logger,
		Cookies:   session.NewCookieStore(cfg.SessionKey, cfg.SessionSecure),
		Verifier:  verifier,
		Events:    events,
		Jobs:      jobs,
		Stories:   stories,
		Alumni:    alumni,
		Countdown: ticker,
		Generator: generator.NewGenerator(),
		Now:       time.Now,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.Addr).
			Bool("open_routes", cfg.OpenRoutes).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
