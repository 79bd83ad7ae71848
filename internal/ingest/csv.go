package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Row is a raw record of an import file.
type Row struct {
	Line   int
	Fields []string
}

// Skipped is a row that was not imported.
type Skipped struct {
	Line   int    `json:"line" example:"5"`                                         // Line in the import file
	Reason string `json:"reason" example:"the payment mode is invalid: \"CHEQUE\""` // Why the row was skipped
}

// ReadCSV reads all records of an import file. The first line is a header
// and is skipped.
//
// Lines that are not valid CSV are returned as skipped rows. Only errors
// of the underlying reader abort reading.
func ReadCSV(r io.Reader) ([]Row, []Skipped, error) {
	reader := csv.NewReader(r)

	// Short rows are skipped later with a proper reason
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := make([]Row, 0)
	skipped := make([]Skipped, 0)

	// Skip the header
	_, err := reader.Read()
	if err == io.EOF {
		return rows, skipped, nil
	}

	var parseErr *csv.ParseError
	if err != nil && !errors.As(err, &parseErr) {
		return nil, nil, fmt.Errorf("could not read the header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if errors.As(err, &parseErr) {
			skipped = append(skipped, Skipped{Line: parseErr.StartLine, Reason: parseErr.Err.Error()})
			continue
		}

		if err != nil {
			return nil, nil, fmt.Errorf("could not read line in CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: record})
	}

	return rows, skipped, nil
}
