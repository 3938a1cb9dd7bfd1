package core

// Process is the scheduler's private copy of a process descriptor.
type Process struct {
	Index       int // position in the caller's input, used for display order and tie-breaks
	ID          string
	ArrivalTime float64
	BurstTime   float64
	Color       string
}

// Result is the execution record of one process. It is never changed after the CPU
// produces it.
type Result struct {
	Process
	StartTime      float64
	CompletionTime float64
	TurnaroundTime float64
	WaitingTime    float64
	ResponseTime   float64
}

type CpuMetric struct {
	TotalTime       float64
	UtilizationTime float64
	IdleTime        float64
}

// CPU is a single non-preemptive core driven by a simulated clock starting at 0.
type CPU struct {
	clock  float64
	metric CpuMetric
}

func NewCPU() *CPU {
	return &CPU{}
}

func (c *CPU) Clock() float64 {
	return c.clock
}

// AdvanceTo idles the CPU until t. It is a no-op when t is not ahead of the clock.
func (c *CPU) AdvanceTo(t float64) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.metric.TotalTime = c.clock
}

// Execute runs p to completion. Execution starts at the later of the current clock and
// p's arrival.
func (c *CPU) Execute(p Process) Result {
	c.AdvanceTo(p.ArrivalTime)

	start := c.clock
	completion := start + p.BurstTime
	turnaround := completion - p.ArrivalTime

	c.clock = completion
	c.metric.UtilizationTime += p.BurstTime
	c.metric.TotalTime = c.clock

	return Result{
		Process:        p,
		StartTime:      start,
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   start - p.ArrivalTime,
	}
}

func (c *CPU) Metric() CpuMetric {
	return c.metric
}
