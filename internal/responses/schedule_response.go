package responses

type ProcessResponse struct {
	ID             string  `json:"id"`
	ArrivalTime    float64 `json:"arrivalTime"`
	BurstTime      float64 `json:"burstTime"`
	StartTime      float64 `json:"startTime"`
	EndTime        float64 `json:"endTime"`
	CompletionTime float64 `json:"completionTime"`
	TurnaroundTime float64 `json:"turnaroundTime"`
	WaitingTime    float64 `json:"waitingTime"`
	ResponseTime   float64 `json:"responseTime"`
}

type GanttEntry struct {
	ID    string  `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Color string  `json:"color"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm,omitempty"`
	Details               []ProcessResponse `json:"results"`
	AverageWaitingTime    float64           `json:"avg_wt"`
	AverageTurnAroundTime float64           `json:"avg_tat"`
	AverageCompletionTime float64           `json:"avg_ct"`
	AverageResponseTime   float64           `json:"avg_rt"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"throughput"`
	GanttChart            []GanttEntry      `json:"gantt_chart"`
}

// Empty is the response for a request without processes. Slices are non-nil so they
// encode as [] rather than null.
func Empty(algorithm string) ScheduleResponse {
	return ScheduleResponse{
		Algorithm:  algorithm,
		Details:    []ProcessResponse{},
		GanttChart: []GanttEntry{},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
