// Package report renders schedule responses for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cpusched/cpu-scheduler/internal/responses"
)

// WriteText writes a title, the Gantt chart and the per-process table for resp.
func WriteText(w io.Writer, title string, resp responses.ScheduleResponse) {
	writeTitle(w, title)
	if len(resp.Details) == 0 {
		_, _ = fmt.Fprintln(w, "No processes provided.")
		return
	}
	writeGantt(w, resp.GanttChart)
	writeSchedule(w, resp)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// writeGantt prints one cell per entry, with an idle cell wherever the CPU sat unused
// between two entries.
func writeGantt(w io.Writer, gantt []responses.GanttEntry) {
	var bar, ticks strings.Builder
	bar.WriteString("|")

	clock := 0.0
	ticks.WriteString(formatTime(clock))
	cell := func(label string, end float64) {
		pad := 8 - len(label)
		if pad < 2 {
			pad = 2
		}
		bar.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")
		mark := formatTime(end)
		width := len(label) + pad + 1
		if gap := width - len(mark); gap > 0 {
			ticks.WriteString(strings.Repeat(" ", gap))
		}
		ticks.WriteString(mark)
	}

	for _, entry := range gantt {
		if entry.Start > clock {
			cell("idle", entry.Start)
		}
		cell(entry.ID, entry.End)
		clock = entry.End
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func writeSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Waiting", "Response"})
	for _, d := range resp.Details {
		table.Append([]string{
			d.ID,
			formatTime(d.ArrivalTime),
			formatTime(d.BurstTime),
			formatTime(d.StartTime),
			formatTime(d.CompletionTime),
			formatTime(d.TurnaroundTime),
			formatTime(d.WaitingTime),
			formatTime(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageCompletionTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Total time %s, idle %s, utilization %.2f, throughput %.2f/t\n",
		formatTime(resp.TotalTime), formatTime(resp.IdleTime), resp.CpuUtilization, resp.CpuThroughput)
}

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
