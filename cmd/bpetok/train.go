package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/textshape/bpe/bpe"
	"github.com/textshape/bpe/internal/runlog"
)

var trainFlags struct {
	input     string
	output    string
	vocabSize int
	specials  []string
	workers   int
	runDB     string
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a tokenizer from a corpus",
	RunE:  runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.StringVar(&trainFlags.input, "input", "", "path to the training corpus (required)")
	f.StringVar(&trainFlags.output, "output", "", "path to write the trained artifact (required)")
	f.IntVar(&trainFlags.vocabSize, "vocab-size", 2000, "target vocabulary size")
	f.StringArrayVar(&trainFlags.specials, "special", nil, "a special token to reserve (repeatable)")
	f.IntVar(&trainFlags.workers, "workers", 1, "goroutines to use for parallel pre-tokenization")
	f.StringVar(&trainFlags.runDB, "run-db", defaultRunDBPath(), "path to the training-run ledger database")
	_ = trainCmd.MarkFlagRequired("input")
	_ = trainCmd.MarkFlagRequired("output")
}

func runTrain(cmd *cobra.Command, args []string) error {
	trainer, err := bpe.NewTrainer(
		bpe.WithVocabSize(trainFlags.vocabSize),
		bpe.WithSpecialTokens(trainFlags.specials),
		bpe.WithTrainWorkers(trainFlags.workers),
	)
	if err != nil {
		return err
	}

	info, err := os.Stat(trainFlags.input)
	if err != nil {
		return fmt.Errorf("bpetok: stat %s: %w", trainFlags.input, err)
	}

	logProgress("training on %s (%d bytes) with %d worker(s)...", trainFlags.input, info.Size(), trainFlags.workers)

	started := time.Now()
	artifact, err := trainer.TrainFromFile(context.Background(), trainFlags.input)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	out, err := os.Create(trainFlags.output)
	if err != nil {
		return fmt.Errorf("bpetok: create %s: %w", trainFlags.output, err)
	}
	defer out.Close()
	if err := artifact.Save(out); err != nil {
		return err
	}

	logProgress("learned %d merges in %s, vocab size %d", len(artifact.Merges), elapsed.Round(time.Millisecond), artifact.Vocabulary.Len())

	if err := recordRun(trainFlags.runDB, runlog.Run{
		CorpusPath: trainFlags.input,
		CorpusSize: info.Size(),
		VocabSize:  artifact.Vocabulary.Len(),
		MergeCount: len(artifact.Merges),
		Duration:   elapsed,
		StartedAt:  started,
	}); err != nil {
		// The ledger is bookkeeping about the run, not the artifact; a
		// failure to record it should not fail a successful training run.
		fmt.Fprintf(os.Stderr, "bpetok: warning: could not record run: %v\n", err)
	}

	return nil
}

func recordRun(dbPath string, run runlog.Run) error {
	store, err := runlog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(run)
	return err
}

func defaultRunDBPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "bpetok-runs.db"
	}
	return dir + "/.bpetok-runs.db"
}

// logProgress writes a progress line to stderr: a single overwriting line
// when attached to a terminal, a plain appended line otherwise (e.g. when
// redirected to a log file).
func logProgress(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\r\033[K%s", msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
