package main

import (
	"github.com/cpusched/cpu-scheduler/cmd"
)

func main() {
	cmd.Execute()
}
