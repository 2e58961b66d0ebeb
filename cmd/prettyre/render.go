package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prettyre"
	"prettyre/internal/recipe"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] recipe.toml",
	Short: "Render a recipe to its regular-expression string",
	Long:  `Render loads a pattern recipe and prints the regular expression it composes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Bool("compile", false, "also compile the pattern and fail on engine errors")
}

func runRender(cmd *cobra.Command, args []string) error {
	compile, err := cmd.Flags().GetBool("compile")
	if err != nil {
		return fmt.Errorf("failed to get compile flag: %w", err)
	}

	_, pattern, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	if compile {
		if _, err := pattern.Compile(); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), pattern.String())
	return nil
}

func loadAndBuild(path string) (string, prettyre.Fragment[prettyre.Chain], error) {
	var zero prettyre.Fragment[prettyre.Chain]
	p, err := recipe.Load(path)
	if err != nil {
		return "", zero, err
	}
	f, err := p.Build()
	if err != nil {
		return "", zero, fmt.Errorf("%s: %w", path, err)
	}
	return p.Name, f, nil
}
