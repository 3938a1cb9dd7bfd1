package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpusched/cpu-scheduler/internal/core"
	"github.com/cpusched/cpu-scheduler/internal/requests"
	"github.com/cpusched/cpu-scheduler/internal/responses"
)

func proc(id string, arrival, burst float64) requests.Process {
	return requests.NewProcess(id, arrival, burst, "")
}

func mustNormalize(t *testing.T, processes ...requests.Process) []core.Process {
	t.Helper()
	jobs, err := Normalize(processes)
	require.NoError(t, err)
	return jobs
}

func detailsByID(resp responses.ScheduleResponse) map[string]responses.ProcessResponse {
	byID := make(map[string]responses.ProcessResponse, len(resp.Details))
	for _, d := range resp.Details {
		byID[d.ID] = d
	}
	return byID
}

func executionOrder(results []core.Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

// randomWorkload builds n processes with small integer times so that ties in arrival
// and burst are frequent.
func randomWorkload(rng *rand.Rand, n int) []requests.Process {
	processes := make([]requests.Process, n)
	for i := range processes {
		processes[i] = proc(fmt.Sprintf("P%d", i+1), float64(rng.Intn(15)), float64(rng.Intn(6)+1))
	}
	return processes
}
