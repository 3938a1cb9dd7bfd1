package schedulers

import (
	"sort"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/responses"
	"github.com/cpusched/cpu-scheduler/internal/util"
)

// generateResponse builds the response from results in execution order. Details are
// listed in input order and the Gantt chart in start order.
func generateResponse(algorithm Algorithm, results []core.Result, metric core.CpuMetric, defaultColor string) responses.ScheduleResponse {
	averages := util.CalculateAverage(results)

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		Details:               generateProcessDetails(results),
		AverageWaitingTime:    util.Round2(averages.WaitingTime),
		AverageTurnAroundTime: util.Round2(averages.TurnAroundTime),
		AverageCompletionTime: util.Round2(averages.CompletionTime),
		AverageResponseTime:   util.Round2(averages.ResponseTime),
		TotalTime:             util.Round2(metric.TotalTime),
		IdleTime:              util.Round2(metric.IdleTime),
		CpuUtilization:        util.Round2(util.Ratio(metric.UtilizationTime, metric.TotalTime)),
		CpuThroughput:         util.Round2(util.Ratio(float64(len(results)), metric.TotalTime)),
		GanttChart:            generateGanttChart(results, defaultColor),
	}
}

func generateProcessDetails(results []core.Result) []responses.ProcessResponse {
	ordered := make([]core.Result, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	details := make([]responses.ProcessResponse, 0, len(ordered))
	for _, r := range ordered {
		details = append(details, responses.ProcessResponse{
			ID:             r.ID,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstTime,
			StartTime:      r.StartTime,
			EndTime:        r.CompletionTime,
			CompletionTime: r.CompletionTime,
			TurnaroundTime: r.TurnaroundTime,
			WaitingTime:    r.WaitingTime,
			ResponseTime:   r.ResponseTime,
		})
	}
	return details
}

func generateGanttChart(results []core.Result, defaultColor string) []responses.GanttEntry {
	gantt := make([]responses.GanttEntry, 0, len(results))
	for _, r := range results {
		color := r.Color
		if color == "" {
			color = defaultColor
		}
		gantt = append(gantt, responses.GanttEntry{
			ID:    r.ID,
			Start: r.StartTime,
			End:   r.CompletionTime,
			Color: color,
		})
	}

	sort.SliceStable(gantt, func(i, j int) bool {
		return gantt[i].Start < gantt[j].Start
	})
	return gantt
}
