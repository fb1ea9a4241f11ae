package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pylearn_tracker/internal/config"
	"pylearn_tracker/internal/controller"
	"pylearn_tracker/internal/repository"
	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"
	"pylearn_tracker/pkg/configwatcher"
	"pylearn_tracker/pkg/logger"
	"pylearn_tracker/pkg/monitoring"
	"pylearn_tracker/pkg/security"
	"pylearn_tracker/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Repo            *repository.ProgressRepository
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	curriculum *service.CurriculumService
	progress   *service.ProgressService
	dashboard  *service.DashboardService
	chart      *service.ChartService
	storage    *service.StorageService
}

type controllers struct {
	curriculum *controller.CurriculumController
	tracker    *controller.TrackerController
	note       *controller.NoteController
	dashboard  *controller.DashboardController
	upload     *controller.UploadController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(cfg *config.Config, repo *repository.ProgressRepository) *services {
	s := &services{}

	s.curriculum = service.NewCurriculumService()
	s.progress = service.NewProgressService(repo, s.curriculum)
	s.dashboard = service.NewDashboardService(s.progress, s.curriculum)
	s.chart = service.NewChartService(s.progress)
	s.storage = service.NewStorageService(cfg)

	return s
}

func (a *App) initControllers(s *services, repo *repository.ProgressRepository) *controllers {
	return &controllers{
		curriculum: controller.NewCurriculumController(s.curriculum),
		tracker:    controller.NewTrackerController(s.progress),
		note:       controller.NewNoteController(s.progress),
		dashboard:  controller.NewDashboardController(s.dashboard, s.chart),
		upload:     controller.NewUploadController(s.progress, s.storage),
		health:     controller.NewHealthController(repo),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	repo := repository.NewProgressRepository(cfg.Data.ProgressFile)
	if err := repo.Initialize(); err != nil {
		logger.Log.Fatal("Failed to initialize progress storage", zap.Error(err))
		log.Fatalf("Failed to initialize progress storage: %v", err)
	}

	app := &App{
		Config: cfg,
		Repo:   repo,
	}

	services := app.initServices(cfg, repo)
	app.services = services
	controllers := app.initControllers(services, repo)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("pylearn-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新：存储后端可在运行中切换
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.storage.Reconfigure(newCfg)
		logger.Log.Info("Config reloaded", zap.String("storageType", newCfg.Storage.Type))
	})

	return app
}

// WatchConfig 启动配置文件监听，变更后触发已注册的回调
func (a *App) WatchConfig(configFile string) {
	configwatcher.WatchConfig(configFile, func(newCfg *config.Config) {
		a.Config = newCfg
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
