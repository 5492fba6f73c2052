// Package main provides the CLI entry point for exchart-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/output"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

var (
	outputPath   string
	workbookPath string
	embedded     bool
	pretty       bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exchart",
		Short: "Render and inspect Excel chart parts",
		Long: `exchart-go renders OOXML chart parts (xl/charts/chartN.xml) from YAML
chart descriptions and summarises existing chart parts as JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")

	renderCmd := &cobra.Command{
		Use:   "render [charts.yaml]",
		Short: "Render chart parts from a YAML description",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, or directory for several charts (default: stdout)")
	renderCmd.Flags().StringVar(&workbookPath, "workbook", "", "xlsx file to read missing cached data from")
	renderCmd.Flags().BoolVar(&embedded, "embedded", false, "Write charts for a worksheet drawing")

	inspectCmd := &cobra.Command{
		Use:   "inspect [chart.xml|book.xlsx]",
		Short: "Summarise chart parts as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(renderCmd, inspectCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	doc, err := exchart.LoadDocument(inputPath)
	if err != nil {
		return err
	}

	opts := exchart.DefaultOptions()
	opts.Logger = slog.Default()
	switch {
	case workbookPath != "":
		opts.Workbook = workbookPath
	case doc.Workbook != "" && !filepath.IsAbs(doc.Workbook):
		// Relative to the description file.
		opts.Workbook = filepath.Join(filepath.Dir(inputPath), doc.Workbook)
	default:
		opts.Workbook = doc.Workbook
	}
	if cmd.Flags().Changed("embedded") {
		opts.Embedded = &embedded
	}

	if len(doc.Charts) > 1 && outputPath == "" {
		return fmt.Errorf("%d charts need an output directory (-o)", len(doc.Charts))
	}

	parts, err := exchart.RenderAll(cmd.Context(), doc, opts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if len(parts) == 1 {
		if outputPath == "" {
			_, err := os.Stdout.Write(parts[0])
			return err
		}
		return writeFile(outputPath, parts[0])
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return err
	}
	for i, part := range parts {
		name := filepath.Join(outputPath, fmt.Sprintf("chart%d.xml", i+1))
		if err := writeFile(name, part); err != nil {
			return err
		}
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", exchart.ErrFileNotFound, inputPath)
	}

	charts, err := parser.ParseChartFile(inputPath)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	jsonData, err := output.ChartsToJSON(charts, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return writeFile(outputPath, jsonData)
	}
	fmt.Println(string(jsonData))
	return nil
}

func writeFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
