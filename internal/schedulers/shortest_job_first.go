package schedulers

import (
	"container/heap"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

// ScheduleShortestJobFirst runs non-preemptive SJF: whenever the CPU is free it picks
// the arrived process with the smallest burst time.
func (s *Scheduler) ScheduleShortestJobFirst(processes []requests.Process) (responses.ScheduleResponse, error) {
	return s.Schedule(processes, string(ShortestJobFirst))
}

func shortestJobFirst(processes []core.Process) ([]core.Result, core.CpuMetric) {
	remaining := sortByArrival(processes)
	next := 0 // remaining[next:] have not arrived yet

	ready := &readyQueue{}
	cpu := core.NewCPU()
	completed := make([]core.Result, 0, len(remaining))

	for len(completed) < len(remaining) {
		for next < len(remaining) && remaining[next].ArrivalTime <= cpu.Clock() {
			heap.Push(ready, remaining[next])
			next++
		}

		if ready.Len() == 0 {
			// nothing to run, idle until the next arrival
			cpu.AdvanceTo(remaining[next].ArrivalTime)
			continue
		}

		shortestJob := heap.Pop(ready).(core.Process)
		completed = append(completed, cpu.Execute(shortestJob))
	}

	return completed, cpu.Metric()
}

// readyQueue orders arrived processes by burst time, then arrival time, then input
// position.
type readyQueue []core.Process

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].BurstTime != q[j].BurstTime {
		return q[i].BurstTime < q[j].BurstTime
	}
	if q[i].ArrivalTime != q[j].ArrivalTime {
		return q[i].ArrivalTime < q[j].ArrivalTime
	}
	return q[i].Index < q[j].Index
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x interface{}) {
	*q = append(*q, x.(core.Process))
}

func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
