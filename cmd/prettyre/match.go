package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags] recipe.toml [text...]",
	Short: "Test sample texts against a recipe's pattern",
	Long:  `Match compiles a pattern recipe and reports, for each sample text, whether the pattern matches it`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMatch,
}

var (
	matchVerdict = color.New(color.FgGreen, color.Bold)
	missVerdict  = color.New(color.FgRed, color.Bold)
)

func runMatch(cmd *cobra.Command, args []string) error {
	_, pattern, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}
	re, err := pattern.Compile()
	if err != nil {
		return err
	}

	color.NoColor = !useColor(cmd, os.Stdout)

	out := cmd.OutOrStdout()
	misses := 0
	for _, sample := range args[1:] {
		if re.MatchString(sample) {
			fmt.Fprintf(out, "%s %q\n", matchVerdict.Sprint("match"), sample)
			continue
		}
		misses++
		fmt.Fprintf(out, "%s  %q\n", missVerdict.Sprint("miss"), sample)
	}

	if misses > 0 {
		return fmt.Errorf("%d of %d samples did not match", misses, len(args)-1)
	}
	return nil
}
