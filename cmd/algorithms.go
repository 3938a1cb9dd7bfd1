package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpusched/cpu-scheduler/internal/schedulers"
)

// algorithmsCmd lists the supported algorithm tokens
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported scheduling algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, algo := range schedulers.Algorithms() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", algo, titles[algo])
		}
	},
}
