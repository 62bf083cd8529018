package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tejash429/course-platform-backend/internal/schema"
)

var outputFile string

var rootCmd = &cobra.Command{
	Use:   "schemadoc",
	Short: "Print the declared course-platform schema",
	Long:  `schemadoc renders the declared tables, columns, relations, and indexes in a compact text format. It reads the model declarations directly and never connects to a database.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	declared, err := schema.Declared()
	if err != nil {
		return fmt.Errorf("failed to parse declared schema: %w", err)
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
			}
		}()
		out = f
	}

	return schema.NewTextFormatter(out).Format(declared)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
