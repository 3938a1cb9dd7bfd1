package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_Execute_StartsAtClockWhenAlreadyArrived(t *testing.T) {
	cpu := NewCPU()
	first := cpu.Execute(Process{ID: "P1", ArrivalTime: 0, BurstTime: 5})
	second := cpu.Execute(Process{ID: "P2", ArrivalTime: 1, BurstTime: 3})

	assert.Equal(t, 0.0, first.StartTime)
	assert.Equal(t, 5.0, first.CompletionTime)
	assert.Equal(t, 5.0, second.StartTime)
	assert.Equal(t, 8.0, second.CompletionTime)
	assert.Equal(t, 7.0, second.TurnaroundTime)
	assert.Equal(t, 4.0, second.WaitingTime)
	assert.Equal(t, second.WaitingTime, second.ResponseTime)
}

func TestCPU_Execute_IdlesUntilArrival(t *testing.T) {
	cpu := NewCPU()
	r := cpu.Execute(Process{ID: "P1", ArrivalTime: 10, BurstTime: 2})

	assert.Equal(t, 10.0, r.StartTime)
	assert.Equal(t, 12.0, r.CompletionTime)
	assert.Equal(t, 0.0, r.WaitingTime)
	assert.Equal(t, CpuMetric{TotalTime: 12, UtilizationTime: 2, IdleTime: 10}, cpu.Metric())
}

func TestCPU_AdvanceTo_NeverMovesBackwards(t *testing.T) {
	cpu := NewCPU()
	cpu.AdvanceTo(4)
	cpu.AdvanceTo(2)

	assert.Equal(t, 4.0, cpu.Clock())
	assert.Equal(t, 4.0, cpu.Metric().IdleTime)
}
