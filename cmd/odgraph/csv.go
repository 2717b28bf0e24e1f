package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/odgraph/builder"
)

var (
	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("csv: missing column")

	// ErrDuplicateColumn is returned when a header names a column twice.
	ErrDuplicateColumn = errors.New("csv: duplicate column")

	// ErrBadWeight is returned for a weight cell that is not a number.
	ErrBadWeight = errors.New("csv: weight is not a number")
)

// table is a parsed CSV: header plus rows.
type table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	t := &table{header: records[0], index: make(map[string]int, len(records[0])), rows: records[1:]}
	for i, name := range t.header {
		name = strings.TrimSpace(name)
		t.header[i] = name
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		t.index[name] = i
	}

	return t, nil
}

func (t *table) column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	return i, nil
}

// readFlows parses a flow table. Every column other than the endpoints is a
// numeric weight; empty cells are left out of the weight map.
func readFlows(r io.Reader, sourceCol, destCol string) ([]builder.FlowRecord, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	si, err := t.column(sourceCol)
	if err != nil {
		return nil, err
	}
	di, err := t.column(destCol)
	if err != nil {
		return nil, err
	}

	flows := make([]builder.FlowRecord, 0, len(t.rows))
	for n, row := range t.rows {
		rec := builder.FlowRecord{
			Source:      strings.TrimSpace(row[si]),
			Destination: strings.TrimSpace(row[di]),
			Weights:     make(map[string]float64, len(row)-2),
		}
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if i == si || i == di || cell == "" {
				continue
			}
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w: %q", n+2, t.header[i], ErrBadWeight, cell)
			}
			rec.Weights[t.header[i]] = w
		}
		flows = append(flows, rec)
	}

	return flows, nil
}

// readVertices parses a vertex table. Cells that parse as numbers become
// float64 attributes, other non-empty cells stay strings.
func readVertices(r io.Reader, idCol string) ([]builder.VertexRecord, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	ii, err := t.column(idCol)
	if err != nil {
		return nil, err
	}

	records := make([]builder.VertexRecord, 0, len(t.rows))
	for _, row := range t.rows {
		rec := builder.VertexRecord{
			ID:         strings.TrimSpace(row[ii]),
			Attributes: make(map[string]any, len(row)-1),
		}
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if i == ii || cell == "" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec.Attributes[t.header[i]] = v
				continue
			}
			rec.Attributes[t.header[i]] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}
