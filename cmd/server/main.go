package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shift-checkin/config"
	"shift-checkin/internal/api/handler"
	"shift-checkin/internal/api/middleware"
	"shift-checkin/internal/api/router"
	"shift-checkin/internal/repository"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/database"
	applogger "shift-checkin/pkg/logger"
	"shift-checkin/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml 与 ./config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("pa_flag_mode", cfg.Shift.PAFlagMode),
		zap.Bool("strict_roles", cfg.Shift.StrictRoles),
	)

	// 3. 初始化存储：JSON 文件（默认）或 PostgreSQL
	var (
		repo *repository.Repository
		db   *gorm.DB
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err = database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		repo = repository.NewRepository(db)
	default:
		repo = repository.NewFileRepository(cfg.Storage.RosterFile, cfg.Storage.AssignmentFile, logger.Named("store"))
	}

	// 4. 连接 Redis（可选：未启用或连接失败时在岗台账只保存在内存，扫码不限流）
	var (
		rdb     *redis.Client
		limiter middleware.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，在岗快照与限流将不可用", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		repo.Ledger = repository.NewSnapshotLedgerRepo(rdb)
		limiter = rdb
	}

	// 5. 依赖注入: Repository → Service → Handler
	svc := service.NewService(cfg, repo, logger)
	// 恢复失败时已记录日志，从空台账开始
	_ = svc.Checkin.Restore(context.Background())
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.Setup(cfg, h, limiter, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if db != nil {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
