package app

import (
	"concept_tutor_backend/internal/config"
	"concept_tutor_backend/internal/controller"
	"concept_tutor_backend/internal/repository"
	"concept_tutor_backend/internal/service"
	"concept_tutor_backend/pkg/logger"
	"concept_tutor_backend/pkg/monitoring"
	"concept_tutor_backend/pkg/security"
	"concept_tutor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	concept *repository.ConceptRepository
	mastery *repository.MasteryRepository
}

type services struct {
	graph   *service.GraphService
	mastery *service.MasteryService
	plan    *service.PlanService
}

type controllers struct {
	health  *controller.HealthController
	graph   *controller.GraphController
	mastery *controller.MasteryController
	plan    *controller.PlanController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OnConfigReload 配置热更新入口，由 configwatcher 调用
func (a *App) OnConfigReload(cfg *config.Config) {
	a.Config = cfg
	logger.Log.Info("Config reloaded")
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories() *repositories {
	// 概念表在此一次性装载并校验，依赖成环属配置错误，直接终止
	conceptRepo, err := repository.NewConceptRepository()
	if err != nil {
		logger.Log.Fatal("Failed to build concept registry", zap.Error(err))
	}

	return &repositories{
		concept: conceptRepo,
		mastery: repository.NewMasteryRepository(),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.graph = service.NewGraphService(repos.concept)
	s.mastery = service.NewMasteryService(repos.mastery)
	s.plan = service.NewPlanService(s.graph, s.mastery)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		health:  controller.NewHealthController(repos.concept, repos.mastery),
		graph:   controller.NewGraphController(s.graph, s.mastery),
		mastery: controller.NewMasteryController(s.mastery),
		plan:    controller.NewPlanController(s.plan),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories()
	services := app.initServices(repos)
	controllers := app.initControllers(services, repos)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("concept-tutor", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	return app
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
