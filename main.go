package main

import (
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fhelderls/eventflow-kanban/config"
	"github.com/fhelderls/eventflow-kanban/internal/handler"
	"github.com/fhelderls/eventflow-kanban/internal/middleware"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/internal/service"
	"github.com/fhelderls/eventflow-kanban/internal/validation"
	"github.com/fhelderls/eventflow-kanban/pkg/database"
	"github.com/fhelderls/eventflow-kanban/pkg/logger"
	"github.com/fhelderls/eventflow-kanban/pkg/rabbitmq"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN(), log)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	eventRepo := repository.NewEventRepository(db)
	allocRepo := repository.NewAllocationRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	eventSvc := service.NewEventService(eventRepo, clientRepo, allocRepo, equipmentRepo, taskRepo, publisher)
	equipmentSvc := service.NewEquipmentService(equipmentRepo, allocRepo, publisher)
	allocSvc := service.NewAllocationService(allocRepo, eventRepo, equipmentRepo, publisher)
	taskSvc := service.NewTaskService(taskRepo, eventRepo, publisher)
	clientSvc := service.NewClientService(clientRepo, eventRepo, publisher)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.Identity())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "eventflow-kanban"})
	})

	handler.NewEventHandler(eventSvc).RegisterRoutes(e.Group("/api/v1/events"))
	handler.NewEquipmentHandler(equipmentSvc, allocSvc).RegisterRoutes(e.Group("/api/v1/equipment"))
	handler.NewClientHandler(clientSvc).RegisterRoutes(e.Group("/api/v1/clients"))
	handler.NewAllocationHandler(allocSvc).RegisterRoutes(e)
	handler.NewTaskHandler(taskSvc).RegisterRoutes(e)

	log.Info("eventflow-kanban starting", zap.String("port", cfg.ServerPort))
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
