package requests

// Process is one process descriptor as supplied by a caller. Times are pointers so a
// missing field can be told apart from an explicit zero.
type Process struct {
	ID          string   `json:"id" yaml:"id"`
	ArrivalTime *float64 `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   *float64 `json:"burstTime" yaml:"burstTime"`
	Color       string   `json:"color,omitempty" yaml:"color,omitempty"`
}

type ScheduleRequest struct {
	Processes []Process `json:"processes" yaml:"processes"`
	Algorithm string    `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
}

// NewProcess builds a fully populated descriptor.
func NewProcess(id string, arrivalTime, burstTime float64, color string) Process {
	return Process{
		ID:          id,
		ArrivalTime: &arrivalTime,
		BurstTime:   &burstTime,
		Color:       color,
	}
}
