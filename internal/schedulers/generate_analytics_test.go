package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

func TestGenerateResponse_DetailsInInputOrderGanttInStartOrder(t *testing.T) {
	jobs := mustNormalize(t, proc("P1", 4, 1), proc("P2", 0, 2), proc("P3", 1, 1))
	results, metric := firstComeFirstServe(jobs)

	resp := generateResponse(FirstComeFirstServe, results, metric, DefaultColor)

	require.Len(t, resp.Details, 3)
	assert.Equal(t, "P1", resp.Details[0].ID)
	assert.Equal(t, "P2", resp.Details[1].ID)
	assert.Equal(t, "P3", resp.Details[2].ID)

	require.Len(t, resp.GanttChart, 3)
	assert.Equal(t, []responses.GanttEntry{
		{ID: "P2", Start: 0, End: 2, Color: DefaultColor},
		{ID: "P3", Start: 2, End: 3, Color: DefaultColor},
		{ID: "P1", Start: 4, End: 5, Color: DefaultColor},
	}, resp.GanttChart)
}

func TestGenerateResponse_AveragesRoundedToTwoPlaces(t *testing.T) {
	// waits 0, 4, 6 -> 3.33; turnarounds 5, 7, 8 -> 6.67; completions 5, 8, 10 -> 7.67
	jobs := mustNormalize(t, proc("P1", 0, 5), proc("P2", 1, 3), proc("P3", 2, 2))
	results, metric := firstComeFirstServe(jobs)

	resp := generateResponse(FirstComeFirstServe, results, metric, DefaultColor)

	assert.Equal(t, 3.33, resp.AverageWaitingTime)
	assert.Equal(t, 6.67, resp.AverageTurnAroundTime)
	assert.Equal(t, 7.67, resp.AverageCompletionTime)
	assert.Equal(t, 3.33, resp.AverageResponseTime)
	assert.Equal(t, 10.0, resp.TotalTime)
	assert.Equal(t, 0.0, resp.IdleTime)
	assert.Equal(t, 1.0, resp.CpuUtilization)
	assert.Equal(t, 0.3, resp.CpuThroughput)
}

func TestGenerateResponse_CpuStatisticsWithIdleTime(t *testing.T) {
	jobs := mustNormalize(t, proc("P1", 2, 2))
	results, metric := firstComeFirstServe(jobs)

	resp := generateResponse(FirstComeFirstServe, results, metric, DefaultColor)

	assert.Equal(t, 4.0, resp.TotalTime)
	assert.Equal(t, 2.0, resp.IdleTime)
	assert.Equal(t, 0.5, resp.CpuUtilization)
	assert.Equal(t, 0.25, resp.CpuThroughput)
}

func TestGenerateGanttChart_ColorDefaultsOnlyWhenMissing(t *testing.T) {
	results := []core.Result{
		{Process: core.Process{ID: "a", Color: "#123456"}, StartTime: 0, CompletionTime: 1},
		{Process: core.Process{ID: "b"}, StartTime: 1, CompletionTime: 2},
	}

	gantt := generateGanttChart(results, "green")

	assert.Equal(t, "#123456", gantt[0].Color)
	assert.Equal(t, "green", gantt[1].Color)
}

func TestGenerateGanttChart_StartTiesKeepPriorOrder(t *testing.T) {
	results := []core.Result{
		{Process: core.Process{ID: "x"}, StartTime: 3, CompletionTime: 3},
		{Process: core.Process{ID: "y"}, StartTime: 1, CompletionTime: 3},
		{Process: core.Process{ID: "z"}, StartTime: 3, CompletionTime: 4},
	}

	gantt := generateGanttChart(results, DefaultColor)

	assert.Equal(t, "y", gantt[0].ID)
	assert.Equal(t, "x", gantt[1].ID)
	assert.Equal(t, "z", gantt[2].ID)
}

func TestGenerateResponse_EmptyResults(t *testing.T) {
	resp := generateResponse(ShortestJobFirst, nil, core.CpuMetric{}, DefaultColor)

	assert.Equal(t, 0.0, resp.AverageWaitingTime)
	assert.Equal(t, 0.0, resp.CpuUtilization)
	assert.Empty(t, resp.Details)
	assert.Empty(t, resp.GanttChart)
}
