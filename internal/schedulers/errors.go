package schedulers

import "github.com/pkg/errors"

// Error kinds returned by Schedule. Match them with errors.Is; the wrapped message
// carries the details.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrSimulationFailure    = errors.New("simulation failure")
)
