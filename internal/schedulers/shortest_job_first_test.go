package schedulers

import (
	"container/heap"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
)

func TestShortestJobFirst_PicksShortestReadyJob(t *testing.T) {
	// P1 is alone at 0; at 8 both P2 and P3 are ready and P2 is shorter
	logger, _ := test.NewNullLogger()
	resp, err := New("", logger).ScheduleShortestJobFirst([]requests.Process{
		proc("P1", 0, 8),
		proc("P2", 1, 4),
		proc("P3", 2, 9),
	})
	require.NoError(t, err)

	byID := detailsByID(resp)
	assert.Equal(t, [2]float64{0, 8}, [2]float64{byID["P1"].StartTime, byID["P1"].CompletionTime})
	assert.Equal(t, [2]float64{8, 12}, [2]float64{byID["P2"].StartTime, byID["P2"].CompletionTime})
	assert.Equal(t, [2]float64{12, 21}, [2]float64{byID["P3"].StartTime, byID["P3"].CompletionTime})
}

func TestShortestJobFirst_NonPreemptive(t *testing.T) {
	// a short job arriving mid-run does not interrupt the running one
	jobs := mustNormalize(t, proc("long", 0, 10), proc("short", 1, 1))

	results, _ := shortestJobFirst(jobs)

	assert.Equal(t, []string{"long", "short"}, executionOrder(results))
	assert.Equal(t, 10.0, results[1].StartTime)
}

func TestShortestJobFirst_IdleGapAdvancesToNextArrival(t *testing.T) {
	jobs := mustNormalize(t, proc("P1", 0, 2), proc("P2", 7, 5), proc("P3", 7, 1))

	results, metric := shortestJobFirst(jobs)

	assert.Equal(t, []string{"P1", "P3", "P2"}, executionOrder(results))
	assert.Equal(t, 7.0, results[1].StartTime)
	assert.Equal(t, 8.0, results[2].StartTime)
	assert.Equal(t, 5.0, metric.IdleTime)
	assert.Equal(t, 13.0, metric.TotalTime)
}

func TestShortestJobFirst_BurstTieBrokenByArrivalThenInputOrder(t *testing.T) {
	// at 5 everyone has arrived; bursts tie at 2
	jobs := mustNormalize(t,
		proc("first", 0, 5),
		proc("late", 3, 2),
		proc("earlyB", 1, 2),
		proc("earlyA", 1, 2),
	)

	results, _ := shortestJobFirst(jobs)

	assert.Equal(t, []string{"first", "earlyB", "earlyA", "late"}, executionOrder(results))
}

func TestShortestJobFirst_SingleLateProcess(t *testing.T) {
	jobs := mustNormalize(t, proc("P1", 10, 2))

	results, _ := shortestJobFirst(jobs)

	require.Len(t, results, 1)
	assert.Equal(t, 10.0, results[0].StartTime)
	assert.Equal(t, 12.0, results[0].CompletionTime)
}

func TestReadyQueue_PopsInPriorityOrder(t *testing.T) {
	q := &readyQueue{}
	for _, p := range []core.Process{
		{Index: 0, ID: "c", ArrivalTime: 0, BurstTime: 3},
		{Index: 1, ID: "b2", ArrivalTime: 2, BurstTime: 1},
		{Index: 2, ID: "a", ArrivalTime: 1, BurstTime: 1},
		{Index: 3, ID: "b1", ArrivalTime: 2, BurstTime: 1},
	} {
		heap.Push(q, p)
	}

	var got []string
	for q.Len() > 0 {
		got = append(got, heap.Pop(q).(core.Process).ID)
	}
	assert.Equal(t, []string{"a", "b2", "b1", "c"}, got)
}
