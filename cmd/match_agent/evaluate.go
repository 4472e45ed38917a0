package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/match"
	"github.com/jonathan/match-engine/internal/observability"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a resume snapshot against a job posting",
	Long:  "Evaluates a structured resume snapshot against a structured job posting, producing a compatibility score, matched and missing skills, and ranked optimization recommendations as JSON.",
	RunE:  runEvaluate,
}

var (
	evaluateConfig  string
	evaluateResume  string
	evaluateJob     string
	evaluateCatalog string
	evaluateOut     string
	evaluateVerbose bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateConfig, "config", "c", "", "Path to config JSON file (optional)")
	evaluateCmd.Flags().StringVarP(&evaluateResume, "resume", "r", "", "Path to input ResumeSnapshot JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateJob, "job", "j", "", "Path to input JobSnapshot JSON file (required)")
	evaluateCmd.Flags().StringVar(&evaluateCatalog, "catalog", "", "Path to skill catalog JSON file (defaults to the embedded catalog)")
	evaluateCmd.Flags().StringVarP(&evaluateOut, "out", "o", "", "Path to output MatchResult JSON file (defaults to stdout)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print a human-readable report to stderr")

	if err := evaluateCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := evaluateCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	// 1. Load and merge config
	cfg, err := loadEvaluateConfig()
	if err != nil {
		return err
	}

	// 2. Load the skill catalog
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load skill catalog: %w", err)
	}

	// 3. Load and validate snapshots
	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	job, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}

	// 4. Evaluate the match
	engine := match.New(cat)
	result, err := engine.EvaluateMatch(resume, job)
	if err != nil {
		var emptyErr *match.EmptyRequirementsError
		if errors.As(err, &emptyErr) {
			return fmt.Errorf("job snapshot %s: %w", cfg.Job, err)
		}
		return fmt.Errorf("evaluation failed: %w", err)
	}

	// 5. Marshal the result
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match result to JSON: %w", err)
	}

	// 6. Write or print
	if evaluateOut != "" {
		if err := os.WriteFile(evaluateOut, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write match result to %s: %w", evaluateOut, err)
		}
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	}

	// 7. Human-readable report on request
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchResult(result)
		printer.PrintRecommendations(result.Recommendations)
		printer.PrintFeedback(result.OverallFeedback)
	}

	return nil
}

// loadEvaluateConfig merges the optional config file with command-line flags.
// Flags win over the file for any value they set.
func loadEvaluateConfig() (*config.Config, error) {
	cfg := &config.Config{
		Resume:  evaluateResume,
		Job:     evaluateJob,
		Catalog: evaluateCatalog,
		Verbose: evaluateVerbose,
	}

	if evaluateConfig != "" {
		fileCfg, err := config.LoadConfig(evaluateConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
