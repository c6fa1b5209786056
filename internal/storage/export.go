package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// exportTables are the document collections included in a dump.
var exportTables = []string{"profiles", "daily_logs", "weekly_checkins"}

// ExportToTOML dumps this user's documents into a single TOML file. For
// each table it retrieves all rows (as maps from column names to values)
// and writes the result to outputPath.
func (s *Storage) ExportToTOML(outputPath string) error {
	dbDump := make(map[string][]map[string]interface{})

	for _, tableName := range exportTables {
		query := fmt.Sprintf("SELECT * FROM %s WHERE user_id = ?;", tableName)
		tableRows, err := s.DB.Query(query, s.UserID)
		if err != nil {
			return fmt.Errorf("querying table %s: %w", tableName, err)
		}

		cols, err := tableRows.Columns()
		if err != nil {
			tableRows.Close()
			return fmt.Errorf("getting columns for table %s: %w", tableName, err)
		}

		var tableData []map[string]interface{}
		for tableRows.Next() {
			values := make([]interface{}, len(cols))
			valuePtrs := make([]interface{}, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := tableRows.Scan(valuePtrs...); err != nil {
				tableRows.Close()
				return fmt.Errorf("scanning row in table %s: %w", tableName, err)
			}

			rowMap := make(map[string]interface{})
			for i, col := range cols {
				val := values[i]
				if b, ok := val.([]byte); ok {
					rowMap[col] = string(b)
				} else if val != nil {
					rowMap[col] = val
				}
			}
			tableData = append(tableData, rowMap)
		}
		tableRows.Close()

		dbDump[tableName] = tableData
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}
