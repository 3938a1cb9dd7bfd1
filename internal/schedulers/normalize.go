package schedulers

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
)

// Normalize validates caller-supplied processes and returns a working copy that shares
// no memory with the input. Every offending record is reported; the combined error
// matches ErrInvalidInput.
func Normalize(processes []requests.Process) ([]core.Process, error) {
	var err error
	seen := make(map[string]int, len(processes))
	normalized := make([]core.Process, 0, len(processes))

	for i, p := range processes {
		if perr := validateProcess(i, p, seen); perr != nil {
			err = multierr.Append(err, perr)
			continue
		}
		normalized = append(normalized, core.Process{
			Index:       i,
			ID:          p.ID,
			ArrivalTime: *p.ArrivalTime,
			BurstTime:   *p.BurstTime,
			Color:       p.Color,
		})
	}

	if err != nil {
		return nil, err
	}
	return normalized, nil
}

func validateProcess(i int, p requests.Process, seen map[string]int) error {
	var err error
	invalid := func(format string, args ...interface{}) {
		args = append([]interface{}{i}, args...)
		err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "process[%d]: "+format, args...))
	}

	if strings.TrimSpace(p.ID) == "" {
		invalid("missing id")
	} else if first, ok := seen[p.ID]; ok {
		invalid("duplicate id %q (first used by process[%d])", p.ID, first)
	} else {
		seen[p.ID] = i
	}

	switch {
	case p.ArrivalTime == nil:
		invalid("missing arrivalTime")
	case !isFinite(*p.ArrivalTime):
		invalid("arrivalTime must be a finite number")
	case *p.ArrivalTime < 0:
		invalid("arrivalTime must not be negative, got %v", *p.ArrivalTime)
	}

	switch {
	case p.BurstTime == nil:
		invalid("missing burstTime")
	case !isFinite(*p.BurstTime):
		invalid("burstTime must be a finite number")
	case *p.BurstTime <= 0:
		invalid("burstTime must be positive, got %v", *p.BurstTime)
	}

	return err
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
