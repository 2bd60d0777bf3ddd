package initialize

import (
	"board-guard/backend/app/controllers"
	"board-guard/backend/app/db"
	"board-guard/backend/app/jobs"
	jwtutil "board-guard/backend/app/jwt"
	"board-guard/backend/app/middleware"
	"board-guard/backend/app/models"
	"board-guard/backend/app/repo"
	"board-guard/backend/app/services"
	"board-guard/backend/config"
	"board-guard/backend/global"
	"board-guard/backend/router"
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Rdb       *redis.Client
	Router    *echo.Echo
	Signer    *jwtutil.Signer
	Users     *services.UserService
	Boards    *services.BoardService
	Scheduler *jobs.Scheduler
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	InitLogger(cfg.Log, nil)
	return BuildWithConfig(cfg)
}

func BuildWithConfig(cfg *config.Config) (app *App, err error) {
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb
	var rdb *redis.Client
	defer func() {
		if err != nil {
			_ = release(gdb, rdb)
		}
	}()

	// Migrate
	if cfg.DB.AutoMigrate {
		if err := gdb.AutoMigrate(&models.User{}, &models.Board{}); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	// Redis is optional; it only receives user snapshots
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		global.Rdb = rdb
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	boardRepo := repo.NewBoardRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	boardSvc := services.NewBoardService(boardRepo)
	if cfg.Bootstrap.AdminUsername != "" && cfg.Bootstrap.AdminPassword != "" {
		if err := userSvc.EnsureAdmin(context.Background(), cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
			global.Logger.Warn().Err(err).Str("username", cfg.Bootstrap.AdminUsername).Msg("admin bootstrap failed")
		}
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	boardCtrl := controllers.NewBoardController(boardSvc)
	mw := &middleware.Auth{Signer: signer}

	// Router
	e := router.NewRouter(httpCtrl, authCtrl, boardCtrl, mw)

	// Jobs
	sched := jobs.NewScheduler(global.Logger)
	snapshot := &jobs.UserSnapshot{Users: userSvc, Logger: global.Logger}
	if rdb != nil {
		snapshot.Sink = &jobs.RedisSink{Client: rdb, Key: cfg.Redis.SnapshotKey, Limit: cfg.Redis.SnapshotLimit}
	}
	if err := sched.Add(cfg.Jobs.UserSnapshot, snapshot); err != nil {
		return nil, fmt.Errorf("schedule user snapshot: %w", err)
	}

	return &App{Cfg: cfg, DB: gdb, Rdb: rdb, Router: e, Signer: signer, Users: userSvc, Boards: boardSvc, Scheduler: sched}, nil
}

// Close releases the database pool and the redis client.
func (a *App) Close() error { return release(a.DB, a.Rdb) }

func release(gdb *gorm.DB, rdb *redis.Client) error {
	if rdb != nil {
		_ = rdb.Close()
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
