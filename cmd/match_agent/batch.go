package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/match-engine/internal/batch"
	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/match"
	"github.com/jonathan/match-engine/internal/types"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a resume snapshot against many job postings",
	Long:  "Evaluates one resume snapshot against multiple job postings in parallel, producing per-job results ranked by score as JSON.",
	RunE:  runBatch,
}

var (
	batchConfig   string
	batchResume   string
	batchJobs     []string
	batchCatalog  string
	batchOut      string
	batchWorkers  int
	batchMinScore float64
	batchJSONLogs bool
	batchVerbose  bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to config JSON file (optional)")
	batchCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to input ResumeSnapshot JSON file (required)")
	batchCmd.Flags().StringArrayVarP(&batchJobs, "job", "j", nil, "Path to a JobSnapshot JSON file (repeatable, at least one required)")
	batchCmd.Flags().StringVar(&batchCatalog, "catalog", "", "Path to skill catalog JSON file (defaults to the embedded catalog)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Worker pool size (defaults to 8)")
	batchCmd.Flags().Float64Var(&batchMinScore, "min-score", 0, "Drop results scoring below this (0.0-1.0)")
	batchCmd.Flags().BoolVar(&batchJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Enable debug logging")

	if err := batchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is the per-job shape of the batch command's JSON output.
type batchEntry struct {
	ID     string             `json:"id"`
	Label  string             `json:"label"`
	Score  float64            `json:"score"`
	Result *types.MatchResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// batchOutput is the top-level shape of the batch command's JSON output.
type batchOutput struct {
	Resume string       `json:"resume"`
	Ranked []batchEntry `json:"ranked"`
	Failed []batchEntry `json:"failed,omitempty"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	// 1. Load and merge config
	cfg, err := loadBatchConfig()
	if err != nil {
		return err
	}

	// 2. Build the logger
	logger, err := logging.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 3. Load catalog and resume
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load skill catalog: %w", err)
	}
	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	// 4. Load every job snapshot, labeling it by file name
	jobs := make([]batch.Job, 0, len(batchJobs))
	for _, path := range batchJobs {
		snapshot, err := loadJob(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, batch.Job{Label: jobLabel(path), Snapshot: snapshot})
	}

	// 5. Run the batch
	evaluator := batch.New(match.New(cat), logger, cfg.Workers)
	evals, err := evaluator.Run(cmd.Context(), resume, jobs)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	// 6. Rank, filter, and shape the output
	out := batchOutput{Resume: cfg.Resume}
	for _, ev := range batch.Ranked(evals) {
		if ev.Result.Score < cfg.MinScore {
			continue
		}
		out.Ranked = append(out.Ranked, batchEntry{
			ID:     ev.ID,
			Label:  ev.Label,
			Score:  ev.Result.Score,
			Result: ev.Result,
		})
	}
	for _, ev := range evals {
		if ev.Err != nil {
			out.Failed = append(out.Failed, batchEntry{
				ID:    ev.ID,
				Label: ev.Label,
				Error: ev.Err.Error(),
			})
		}
	}

	jsonOutput, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch output to JSON: %w", err)
	}

	// 7. Write or print
	if batchOut != "" {
		if err := os.WriteFile(batchOut, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write batch output to %s: %w", batchOut, err)
		}
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	}

	return nil
}

// jobLabel derives a human-readable label from a job snapshot path.
func jobLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadBatchConfig merges the optional config file with command-line flags.
// Flags win over the file for any value they set.
func loadBatchConfig() (*config.Config, error) {
	cfg := &config.Config{
		Resume:   batchResume,
		Catalog:  batchCatalog,
		Workers:  batchWorkers,
		MinScore: batchMinScore,
		Verbose:  batchVerbose,
		JSONLogs: batchJSONLogs,
	}

	if batchConfig != "" {
		fileCfg, err := config.LoadConfig(batchConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(batchJobs) == 0 {
		return nil, fmt.Errorf("at least one --job is required")
	}
	return cfg, nil
}
