// Export command dumps every table to JSONL files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tables to JSONL files",
	Long: `Export dumps every table to <table>.jsonl in the export
directory, one JSON object per row. Writes are atomic.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "export", "directory to write JSONL files into")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Export(exportDir); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("Exported tables to %s\n", exportDir)
	return nil
}
