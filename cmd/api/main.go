package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	httpadp "accounts-payable-service/internal/adapter/http"
	apmw "accounts-payable-service/internal/adapter/middleware"
	"accounts-payable-service/internal/adapter/repository/mysql"
	"accounts-payable-service/internal/adapter/sweeper"
	"accounts-payable-service/internal/client"
	"accounts-payable-service/internal/config"
	"accounts-payable-service/internal/infrastructure/cache"
	"accounts-payable-service/internal/infrastructure/db"
	"accounts-payable-service/internal/usecase/schedule"
	"accounts-payable-service/internal/usecase/workflow"
	"accounts-payable-service/pkg/bankcal"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "accounts-payable").Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	// Notifications degrade gracefully without a broker.
	var nc *nats.Conn
	if cfg.NATSURL != "" {
		nc, err = nats.Connect(cfg.NATSURL, nats.Name("accounts-payable-service"))
		if err != nil {
			log.Warn().Err(err).Msg("nats unavailable, notifications disabled")
			nc = nil
		}
	}

	payableRepo := mysql.NewPayableRepository(gdb)
	approvalRepo := mysql.NewApprovalStepRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	directory := client.NewStaticDirectory()
	supplier := client.NewStaticSupplierService(nil)
	notifier := client.NewNotificationPublisher(nc, log)

	engine := workflow.NewEngine(payableRepo, approvalRepo, uow, directory, supplier, notifier, log)

	cal := bankcal.New(append(bankcal.CanadianHolidays(), cfg.ExtraHolidayDates()...))
	optimizer := schedule.NewOptimizer(payableRepo, supplier, cal, log)

	sw := sweeper.New(engine, cfg.SweepInterval, cfg.EscalationThreshold, log)
	sw.Start()
	defer sw.Stop()

	h := httpadp.NewHandler()
	payableH := httpadp.NewPayableHandler(payableRepo)
	approvalH := httpadp.NewApprovalHandler(engine)
	scheduleH := httpadp.NewScheduleHandler(optimizer)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := apmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/payables", payableH.CreatePayable)
	e.GET("/payables/:payable_id", payableH.GetPayable)
	e.GET("/payables/:payable_id/approvals", approvalH.ListSteps)

	e.GET("/approvals/:step_id", approvalH.GetStep)
	e.POST("/payables/:payable_id/workflow", approvalH.CreateWorkflow, idemp)
	e.POST("/approvals/:step_id/decision", approvalH.Decide, idemp)
	e.POST("/approvals/:step_id/escalate", approvalH.Escalate, idemp)
	e.POST("/approvals/escalations/sweep", approvalH.Sweep)

	e.POST("/payments/optimize", scheduleH.Optimize)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
