package schedulers

import (
	"sort"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes in arrival order.
func (s *Scheduler) ScheduleFirstComeFirstServe(processes []requests.Process) (responses.ScheduleResponse, error) {
	return s.Schedule(processes, string(FirstComeFirstServe))
}

func firstComeFirstServe(processes []core.Process) ([]core.Result, core.CpuMetric) {
	jobs := sortByArrival(processes)

	cpu := core.NewCPU()
	results := make([]core.Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, cpu.Execute(job))
	}

	return results, cpu.Metric()
}

// sortByArrival returns a copy of processes ordered by arrival time, ties kept in input
// order.
func sortByArrival(processes []core.Process) []core.Process {
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].Index < jobs[j].Index
	})
	return jobs
}
