// Package main provides the CLI entry point for zoriclean-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/datakits/zoriclean-go/pkg/zoriclean"
)

var (
	inputPath  string
	outputPath string
	longFormat bool
	cities     []string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zoriclean",
		Short: "Filter Zillow ZORI city data to selected cities",
		Long: `zoriclean-go filters the Zillow ZORI city-level rent index dataset down to
a configurable set of cities, optionally reshaping the result into a tidy
layout with one row per city per date.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&inputPath, "input", zoriclean.DefaultInputPath, "Path to the raw Zillow ZORI file (.csv or .xlsx)")
	rootCmd.Flags().StringVar(&outputPath, "output", zoriclean.DefaultOutputPath, "Path to write the cleaned file (.csv or .xlsx)")
	rootCmd.Flags().BoolVar(&longFormat, "long", false, "Write a tidy/long dataset with one row per city per date")
	rootCmd.Flags().StringSliceVar(&cities, "cities", zoriclean.DefaultCities, "City names to keep")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger.Info("Starting clean",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Bool("long", longFormat),
		slog.Int("cities", len(cities)))
	logger.Debug("Target cities", slog.Any("names", cities))

	summary, err := zoriclean.Clean(inputPath, outputPath, zoriclean.Options{
		Long:   longFormat,
		Cities: cities,
	})
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	logger.Info("Clean finished",
		slog.Int("kept", summary.Kept),
		slog.Int("total", summary.Total),
		slog.String("output", summary.OutputPath))

	fmt.Printf("Filtered %d rows out of %d. Output: %s\n", summary.Kept, summary.Total, summary.OutputPath)
	return nil
}
