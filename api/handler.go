package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cpusched/cpu-scheduler/config"
	"github.com/cpusched/cpu-scheduler/internal/requests"
	"github.com/cpusched/cpu-scheduler/internal/responses"
	"github.com/cpusched/cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	Calculate(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	scheduler *schedulers.Scheduler
	log       logrus.FieldLogger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log logrus.FieldLogger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		scheduler: schedulers.New(config.Gantt.DefaultColor, log),
		log:       log,
	}
}

// Calculate takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Calculate(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	response, err := s.scheduler.Schedule(request.Processes, request.Algorithm)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	response, err := s.scheduler.ScheduleFirstComeFirstServe(request.Processes)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	response, err := s.scheduler.ScheduleShortestJobFirst(request.Processes)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	all, err := s.scheduler.ScheduleAll(request.Processes)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": schedulers.Algorithms()})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// respond writes a scheduling result or maps its error.
func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, response responses.ScheduleResponse, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

// errBadRequest marks failures to read the request body.
var errBadRequest = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := &requests.ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, errors.Wrap(errBadRequest, err.Error())
	}
	if limit := s.config.Server.MaxProcesses; len(request.Processes) > limit {
		return nil, errors.Wrapf(schedulers.ErrInvalidInput, "%d processes exceed the limit of %d", len(request.Processes), limit)
	}
	return request, nil
}

// fail maps scheduler errors to HTTP statuses.
func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "An error occurred during calculation: " + err.Error()

	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, schedulers.ErrInvalidInput),
		errors.Is(err, schedulers.ErrUnsupportedAlgorithm):
		status = fiber.StatusBadRequest
		message = err.Error()
	}

	s.log.WithFields(logrus.Fields{
		"path":   ctx.Path(),
		"status": status,
	}).WithError(err).Warn("request rejected")

	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
