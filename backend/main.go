package main

import (
	"board-guard/backend/app/db"
	"board-guard/backend/config"
	"board-guard/backend/global"
	"board-guard/backend/initialize"
	"board-guard/backend/server"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var (
		cfgPath     = flag.String("config", "config/config.yaml", "Path to configuration file")
		migrateOnly = flag.Bool("migrate", false, "Apply SQL migrations and exit")
	)
	flag.Parse()
	initialize.InitLogger(config.Log{Level: "info"}, nil)

	if *migrateOnly {
		if err := runMigrations(*cfgPath); err != nil {
			global.Logger.Fatal().Err(err).Msg("migration failed")
		}
		global.Logger.Info().Msg("migrations applied")
		return
	}

	app, err := initialize.Build(*cfgPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	if err := config.Watch(*cfgPath, func(cfg *config.Config) {
		initialize.SetLogLevel(cfg.Log.Level)
		global.Logger.Info().Str("level", cfg.Log.Level).Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch disabled")
	}

	app.Scheduler.Start()
	errc := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("http server listening")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		global.Logger.Info().Str("signal", s.String()).Msg("shutting down")
	case err := <-errc:
		if err != nil {
			global.Logger.Error().Err(err).Msg("http server stopped")
		}
	}

	<-app.Scheduler.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx, app.Router); err != nil {
		global.Logger.Error().Err(err).Msg("http shutdown")
	}
}

func runMigrations(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	initialize.InitLogger(cfg.Log, nil)
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	return db.Migrate(gdb)
}
