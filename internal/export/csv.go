package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/noah-isme/class-coins-api/internal/models"
)

var standingsHeaders = []string{"name", "coins"}

// RenderStandings produces a CSV document of a class's students in the
// order given, one row per student. Callers pass the coins-descending
// listing so the file reads as a ranking.
func RenderStandings(students []models.Student) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(standingsHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, student := range students {
		record := []string{student.Name, strconv.FormatInt(student.Coins, 10)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
