// Package main provides the CLI entry point for matchtemplates.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates"
)

var outputDir string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matchtemplates",
		Short: "Generate match import templates",
		Long: `matchtemplates writes sample CSV and Excel files showing the column
structure expected by the match import.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", matchtemplates.DefaultOutputDir, "Directory for generated templates")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "csv",
		Short: "Create comma and semicolon separated CSV templates",
		Args:  cobra.NoArgs,
		RunE:  runCSV,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "excel",
		Short: "Create xlsx templates with sample data and instructions",
		Args:  cobra.NoArgs,
		RunE:  runExcel,
	})

	return rootCmd
}

func runCSV(cmd *cobra.Command, args []string) error {
	out := newPrinter(cmd.OutOrStdout())
	opts := matchtemplates.Options{OutputDir: outputDir}

	out.info("🚀 Creating CSV templates for match import...")
	out.blank()

	results, err := matchtemplates.GenerateCSV(opts)
	out.created(results)
	if err != nil {
		out.failure(fmt.Sprintf("❌ Error creating CSV templates: %v", err))
		out.hint(fmt.Sprintf("💡 Make sure you have write permissions to the %s directory", outputDir))
		return fmt.Errorf("csv templates: %w", err)
	}

	out.blank()
	out.success("🎉 All CSV templates created successfully!")
	out.info(fmt.Sprintf("📁 Check the '%s' directory for the generated files:", outputDir))
	for _, r := range results {
		out.info(fmt.Sprintf("   • %s - %s", filepath.Base(r.Path), r.Description))
	}
	out.blank()
	out.hint("💡 CSV advantages over Excel:")
	out.hint("   • Better date/time formatting")
	out.hint("   • No hidden characters or formatting issues")
	out.hint("   • Easier to edit in text editors")
	out.hint("   • More reliable for data imports")

	return nil
}

func runExcel(cmd *cobra.Command, args []string) error {
	out := newPrinter(cmd.OutOrStdout())
	opts := matchtemplates.Options{OutputDir: outputDir}

	out.info("🚀 Creating Excel templates for match import...")
	out.blank()

	results, err := matchtemplates.GenerateWorkbooks(opts)
	out.created(results)
	if err != nil {
		out.failure(fmt.Sprintf("❌ Error creating templates: %v", err))
		out.hint(fmt.Sprintf("💡 Make sure you have write permissions to the %s directory", outputDir))
		return fmt.Errorf("excel templates: %w", err)
	}

	out.blank()
	out.success("🎉 All templates created successfully!")
	out.info(fmt.Sprintf("📁 Check the '%s' directory for the generated files", outputDir))

	return nil
}
