// JSONL export for the market database. Each table is dumped to
// <table>.jsonl in the export directory using a temp-file, fsync, rename
// write so a crash never leaves a partial file behind.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Export dumps every standard table to a JSONL file in dir, one JSON
// object per row keyed by column name. Creates dir if needed.
func (b *Backend) Export(dir string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return types.ErrStoreClosed
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	for _, tableName := range types.StandardTableNames {
		if err := b.exportTable(tableName, filepath.Join(dir, tableName+".jsonl")); err != nil {
			return fmt.Errorf("exporting %s: %w", tableName, err)
		}
	}
	return nil
}

// exportTable reads all rows from the given table and writes them as
// JSONL records to path.
func (b *Backend) exportTable(tableName, path string) error {
	rows, err := b.db.Query("SELECT * FROM " + tableName + " ORDER BY id ASC")
	if err != nil {
		return fmt.Errorf("querying %s: %w", tableName, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("getting columns for %s: %w", tableName, err)
	}

	var records []json.RawMessage
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return fmt.Errorf("scanning %s row: %w", tableName, err)
		}
		rec := make(map[string]any, len(cols))
		for i, col := range cols {
			rec[col] = values[i]
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling %s row: %w", tableName, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s: %w", tableName, err)
	}

	return writeJSONL(path, records)
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
