package schedulers

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

// DefaultColor is the Gantt color used for processes that carry none.
const DefaultColor = "#4CAF50"

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
)

type simulateFunc func([]core.Process) ([]core.Result, core.CpuMetric)

var simulators = map[Algorithm]simulateFunc{
	FirstComeFirstServe: firstComeFirstServe,
	ShortestJobFirst:    shortestJobFirst,
}

// Algorithms lists the supported algorithm tokens in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst}
}

// ParseAlgorithm resolves a token, ignoring case and surrounding whitespace.
func ParseAlgorithm(token string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := simulators[algorithm]; !ok {
		return "", errors.Wrapf(ErrUnsupportedAlgorithm, "%q (supported: fcfs, sjf)", token)
	}
	return algorithm, nil
}

// Scheduler runs simulations. The zero value is not usable; use New.
// A Scheduler holds no per-call state and is safe for concurrent use.
type Scheduler struct {
	defaultColor string
	log          logrus.FieldLogger
}

func New(defaultColor string, log logrus.FieldLogger) *Scheduler {
	if defaultColor == "" {
		defaultColor = DefaultColor
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{defaultColor: defaultColor, log: log}
}

var defaultScheduler = New(DefaultColor, nil)

// Schedule simulates processes under the named algorithm with the default scheduler.
func Schedule(processes []requests.Process, algorithm string) (responses.ScheduleResponse, error) {
	return defaultScheduler.Schedule(processes, algorithm)
}

// Schedule simulates processes under the named algorithm. An empty process list
// yields an all-zero response without error. Failures are one of ErrInvalidInput,
// ErrUnsupportedAlgorithm or ErrSimulationFailure.
func (s *Scheduler) Schedule(processes []requests.Process, algorithm string) (responses.ScheduleResponse, error) {
	if len(processes) == 0 {
		return responses.Empty(strings.ToLower(strings.TrimSpace(algorithm))), nil
	}

	algo, err := ParseAlgorithm(algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	jobs, err := Normalize(processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return s.run(algo, jobs)
}

// ScheduleAll runs every supported algorithm over the same processes.
func (s *Scheduler) ScheduleAll(processes []requests.Process) (map[Algorithm]responses.ScheduleResponse, error) {
	all := make(map[Algorithm]responses.ScheduleResponse, len(simulators))
	if len(processes) == 0 {
		for _, algo := range Algorithms() {
			all[algo] = responses.Empty(string(algo))
		}
		return all, nil
	}

	jobs, err := Normalize(processes)
	if err != nil {
		return nil, err
	}

	for _, algo := range Algorithms() {
		response, err := s.run(algo, jobs)
		if err != nil {
			return nil, err
		}
		all[algo] = response
	}
	return all, nil
}

func (s *Scheduler) run(algo Algorithm, jobs []core.Process) (responses.ScheduleResponse, error) {
	log := s.log.WithField("algorithm", algo)
	log.WithField("processes", len(jobs)).Info("running simulation")

	results, metric, err := simulate(algo, simulators[algo], jobs)
	if err != nil {
		log.WithError(err).Error("simulation failed")
		return responses.ScheduleResponse{}, err
	}

	for _, r := range results {
		log.WithFields(logrus.Fields{
			"pid":   r.ID,
			"start": r.StartTime,
			"end":   r.CompletionTime,
		}).Debug("process executed")
	}

	response := generateResponse(algo, results, metric, s.defaultColor)
	if err := checkSummary(response); err != nil {
		err = errors.Wrapf(err, "%s", algo)
		log.WithError(err).Error("simulation failed")
		return responses.ScheduleResponse{}, err
	}
	return response, nil
}

// simulate runs sim and turns a panic or a malformed trace into ErrSimulationFailure.
func simulate(algo Algorithm, sim simulateFunc, jobs []core.Process) (results []core.Result, metric core.CpuMetric, err error) {
	defer func() {
		if r := recover(); r != nil {
			results, metric = nil, core.CpuMetric{}
			err = errors.Wrapf(ErrSimulationFailure, "%s: %v", algo, r)
		}
	}()

	results, metric = sim(jobs)
	if err := checkResults(jobs, results); err != nil {
		return nil, core.CpuMetric{}, errors.Wrapf(err, "%s", algo)
	}
	return results, metric, nil
}

func checkResults(jobs []core.Process, results []core.Result) error {
	if len(results) != len(jobs) {
		return errors.Wrapf(ErrSimulationFailure, "produced %d results for %d processes", len(results), len(jobs))
	}
	for _, r := range results {
		for _, v := range []float64{r.StartTime, r.CompletionTime, r.TurnaroundTime, r.WaitingTime} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrSimulationFailure, "process %q: time overflowed", r.ID)
			}
		}
	}
	return nil
}

// checkSummary rejects summaries whose sums or rounding overflowed even though every
// per-process time is finite.
func checkSummary(resp responses.ScheduleResponse) error {
	figures := map[string]float64{
		"avg_wt":          resp.AverageWaitingTime,
		"avg_tat":         resp.AverageTurnAroundTime,
		"avg_ct":          resp.AverageCompletionTime,
		"avg_rt":          resp.AverageResponseTime,
		"total_time":      resp.TotalTime,
		"idle_time":       resp.IdleTime,
		"cpu_utilization": resp.CpuUtilization,
		"throughput":      resp.CpuThroughput,
	}
	for name, v := range figures {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrSimulationFailure, "%s overflowed", name)
		}
	}
	return nil
}
