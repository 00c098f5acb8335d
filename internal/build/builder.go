package build

import (
	"errors"
	"io"

	"sjr-generator/internal/common"
	"sjr-generator/internal/issn"
	"sjr-generator/internal/record"
	"sjr-generator/internal/score"
)

// Required CSV column names.
const (
	ColumnISSN = "Issn"
	ColumnSJR  = "SJR"
)

// SJRMap maps a normalized ISSN to its rounded SJR score.
type SJRMap map[string]int

// Report counts what one build run saw and skipped.
type Report struct {
	// Rows is the number of data rows read.
	Rows int
	// Unscored is the number of rows skipped for lack of a parseable score.
	Unscored int
	// Dropped is the number of ISSN tokens discarded as invalid.
	Dropped int
}

// Load opens the CSV at path and builds the SJR map from it. The file
// handle is released on every path, including early abort.
func Load(path string) (SJRMap, Report, error) {
	reader, err := record.Open(path, ColumnISSN, ColumnSJR)
	if err != nil {
		return nil, Report{}, err
	}
	defer reader.Close()

	return Build(reader)
}

// Build folds all remaining rows of reader into an SJR map. When one
// ISSN appears in several rows the maximum score wins.
func Build(reader *record.Reader) (SJRMap, Report, error) {
	sjrMap := SJRMap{}

	var report Report

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, report, err
		}

		report.Rows++

		value, ok := score.Parse(row[ColumnSJR])
		if !ok {
			report.Unscored++

			continue
		}

		issnField := row[ColumnISSN]
		issns := issn.ParseList(issnField)
		report.Dropped += issn.CountTokens(issnField) - len(issns)

		if common.IsEmpty(issns) {
			continue
		}

		for _, id := range issns {
			if current, seen := sjrMap[id]; !seen || value > current {
				sjrMap[id] = value
			}
		}
	}

	return sjrMap, report, nil
}
