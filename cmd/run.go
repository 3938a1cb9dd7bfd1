package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cpusched/cpu-scheduler/internal/report"
	"github.com/cpusched/cpu-scheduler/internal/schedulers"
	"github.com/cpusched/cpu-scheduler/internal/workload"
)

var (
	workloadPath string // Process file (.csv, .yaml, .yml, .json)
	algorithm    string // fcfs, sjf or all
	output       string // table or json
)

var titles = map[schedulers.Algorithm]string{
	schedulers.FirstComeFirstServe: "First-come, first-serve",
	schedulers.ShortestJobFirst:    "Shortest-job-first",
}

// runCmd simulates a workload file and prints the result
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the processes in a workload file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workloadPath == "" {
			return errors.New("--file is required")
		}
		if output != "table" && output != "json" {
			return errors.Errorf("invalid --output %q (expected table or json)", output)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		processes, err := workload.LoadFile(workloadPath)
		if err != nil {
			return err
		}
		log.WithField("processes", len(processes)).Debug("workload loaded")

		scheduler := schedulers.New(cfg.Gantt.DefaultColor, log)
		w := cmd.OutOrStdout()

		if strings.EqualFold(strings.TrimSpace(algorithm), "all") {
			all, err := scheduler.ScheduleAll(processes)
			if err != nil {
				return err
			}
			if output == "json" {
				return report.WriteJSON(w, all)
			}
			for _, algo := range schedulers.Algorithms() {
				report.WriteText(w, titles[algo], all[algo])
			}
			return nil
		}

		response, err := scheduler.Schedule(processes, algorithm)
		if err != nil {
			return err
		}
		if output == "json" {
			return report.WriteJSON(w, response)
		}
		report.WriteText(w, titles[schedulers.Algorithm(response.Algorithm)], response)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file (.csv, .yaml, .yml, .json)")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Scheduling algorithm (fcfs, sjf, all)")
	runCmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
}
