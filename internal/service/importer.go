package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// Required and optional CSV import columns. Header names match the exported
// template exactly.
const (
	importColActivityID = "ActivityID"
	importColDate       = "Date"
	importColQuantity   = "Quantity"
	importColLocationID = "LocationID"
)

// Importer performs best-effort CSV batch imports of activity logs for one
// user. Rows are processed sequentially, each as its own autocommitted
// insert; a failed row is recorded and the rest of the batch continues.
type Importer struct {
	logs *LogService
}

// NewImporter creates a new Importer.
func NewImporter(logs *LogService) *Importer {
	return &Importer{logs: logs}
}

// ImportReport describes the outcome of one batch.
type ImportReport struct {
	BatchID  string
	Inserted int
	Failures []ImportFailure
}

// ImportFailure records one rejected row. Line numbers are 1-based and
// count the header.
type ImportFailure struct {
	Line   int
	Reason string
}

// Import reads CSV rows from r and inserts each as a log for userID. The
// header must name ActivityID, Date and Quantity; LocationID is optional.
// Only a missing or unusable header aborts the whole import.
func (im *Importer) Import(ctx context.Context, userID int64, r io.Reader) (*ImportReport, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: a user must be selected before importing", domain.ErrValidation)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrValidation)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{importColActivityID, importColDate, importColQuantity} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: column %s is required", domain.ErrValidation, required)
		}
	}

	report := &ImportReport{BatchID: uuid.NewString()}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Failures = append(report.Failures, ImportFailure{Line: line, Reason: err.Error()})
			continue
		}

		log, err := parseImportRow(record, columns, userID)
		if err != nil {
			report.Failures = append(report.Failures, ImportFailure{Line: line, Reason: err.Error()})
			continue
		}

		if _, err := im.logs.Add(ctx, *log); err != nil {
			report.Failures = append(report.Failures, ImportFailure{Line: line, Reason: err.Error()})
			continue
		}
		report.Inserted++
	}

	return report, nil
}

func parseImportRow(record []string, columns map[string]int, userID int64) (*domain.NewLog, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	activityID, err := strconv.ParseInt(field(importColActivityID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric ActivityID %q", domain.ErrValidation, field(importColActivityID))
	}

	quantity, err := strconv.ParseFloat(field(importColQuantity), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric Quantity %q", domain.ErrValidation, field(importColQuantity))
	}

	log := &domain.NewLog{
		UserID:     userID,
		ActivityID: activityID,
		Date:       field(importColDate),
		Quantity:   quantity,
	}

	if raw := field(importColLocationID); raw != "" {
		locationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric LocationID %q", domain.ErrValidation, raw)
		}
		log.LocationID = &locationID
	}

	return log, nil
}
