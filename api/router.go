package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cpusched/cpu-scheduler/config"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

// NewApp builds the fiber application with all scheduler routes mounted.
func NewApp(cfg *config.SchedulerConfig, log logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(log))
	app.Use(recover.New())

	Register(app, NewSchedulerHandlerImpl(cfg, log))
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	app.Get("/healthz", handler.Health)
	app.Post("/calculate", handler.Calculate)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.Algorithms)
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return ctx.Status(code).JSON(responses.ErrorResponse{Error: err.Error()})
}

func requestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		if chainErr := ctx.Next(); chainErr != nil {
			if err := ctx.App().Config().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.WithFields(logrus.Fields{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"latency":    time.Since(start).String(),
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		}).Info("request handled")
		return nil
	}
}
