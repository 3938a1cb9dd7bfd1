// Package workload reads process lists from files for the command line.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cpusched/cpu-scheduler/internal/requests"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Errorf("unsupported workload file %q (expected .csv, .yaml, .yml or .json)", path)
	}
}

// LoadFile reads the processes stored in path.
func LoadFile(path string) ([]requests.Process, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	processes, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return processes, nil
}

// Load decodes processes from r. Fields absent in the input stay unset so that the
// scheduler can report them.
func Load(r io.Reader, format Format) ([]requests.Process, error) {
	switch format {
	case FormatCSV:
		return loadCSV(r)
	case FormatYAML:
		return loadYAML(r)
	case FormatJSON:
		return loadJSON(r)
	default:
		return nil, errors.Errorf("unsupported workload format %q", format)
	}
}

// loadCSV reads rows of id,arrival,burst[,color]. A first row starting with "id" is a
// header.
func loadCSV(r io.Reader) ([]requests.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	processes := make([]requests.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, errors.Errorf("row %d: expected 3 or 4 columns, got %d", i+1, len(row))
		}

		p := requests.Process{ID: strings.TrimSpace(row[0])}
		if p.ArrivalTime, err = parseTime(row[1]); err != nil {
			return nil, errors.Wrapf(err, "row %d: arrival time", i+1)
		}
		if p.BurstTime, err = parseTime(row[2]); err != nil {
			return nil, errors.Wrapf(err, "row %d: burst time", i+1)
		}
		if len(row) == 4 {
			p.Color = strings.TrimSpace(row[3])
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// parseTime returns nil for a blank cell.
func parseTime(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, errors.Errorf("%q is not a number", cell)
	}
	return &v, nil
}

func loadYAML(r io.Reader) ([]requests.Process, error) {
	var request requests.ScheduleRequest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	return nonNil(request.Processes), nil
}

func loadJSON(r io.Reader) ([]requests.Process, error) {
	var request requests.ScheduleRequest
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing JSON")
	}
	return nonNil(request.Processes), nil
}

func nonNil(processes []requests.Process) []requests.Process {
	if processes == nil {
		return []requests.Process{}
	}
	return processes
}
