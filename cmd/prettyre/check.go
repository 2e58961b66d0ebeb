package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] recipe.toml...",
	Short: "Validate recipe files",
	Long:  `Check loads, builds and compiles every given recipe and reports the first failure`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", runtime.NumCPU(), "number of recipes checked concurrently")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	for _, path := range args {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			_, pattern, err := loadAndBuild(path)
			if err != nil {
				return err
			}
			if _, err := pattern.Compile(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d recipe(s) ok\n", len(args))
	return nil
}
