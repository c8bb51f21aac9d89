package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textshape/bpe/internal/runlog"
)

var runsFlags struct {
	runDB string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past training runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsFlags.runDB, "run-db", defaultRunDBPath(), "path to the training-run ledger database")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := runlog.Open(runsFlags.runDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, r := range runs {
		fmt.Println(r.Summary())
	}
	return nil
}
