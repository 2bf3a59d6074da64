package stations

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load station reference %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// stationRecord mirrors one row of the reference file in either JSON or CSV form
type stationRecord struct {
	Station   string      `json:"Station" csv:"Station"`
	Name      string      `json:"Station Name" csv:"Station Name"`
	Distance  json.Number `json:"Distance" csv:"-"`
	Direction string      `json:"Direction" csv:"Direction"`

	DistanceText string `json:"-" csv:"Distance"`
}

func (r stationRecord) toStationRef() (StationRef, error) {
	distanceText := strings.TrimSpace(r.DistanceText)
	if distanceText == "" {
		distanceText = r.Distance.String()
	}

	distance, err := strconv.ParseFloat(distanceText, 64)
	if err != nil {
		return StationRef{}, fmt.Errorf("invalid distance %q", distanceText)
	}

	return StationRef{
		Code:     strings.TrimSpace(r.Station),
		Name:     strings.TrimSpace(r.Name),
		Distance: distance,
		Side:     Side(strings.ToUpper(strings.TrimSpace(r.Direction))),
	}, nil
}

func LoadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	var table *Table

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		table, err = ParseCSV(file)
	default:
		table, err = ParseJSON(file)
	}

	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	log.Info().
		Str("path", path).
		Int("south", len(table.South)).
		Int("north", len(table.North)).
		Msg("Loaded station reference")

	return table, nil
}

func ParseJSON(reader io.Reader) (*Table, error) {
	var rawRows []json.RawMessage
	if err := json.NewDecoder(reader).Decode(&rawRows); err != nil {
		return nil, err
	}

	var records []stationRecord
	for i, rawRow := range rawRows {
		var record stationRecord
		if err := json.Unmarshal(rawRow, &record); err != nil {
			log.Warn().Err(err).Int("row", i).Msg("Skipping unreadable station reference row")
			continue
		}

		records = append(records, record)
	}

	return buildTable(records)
}

func ParseCSV(reader io.Reader) (*Table, error) {
	var records []stationRecord

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
		return nil, err
	}

	return buildTable(records)
}

func buildTable(records []stationRecord) (*Table, error) {
	rows := make([]StationRef, 0, len(records))

	for i, record := range records {
		row, err := record.toStationRef()
		if err != nil {
			log.Warn().Err(err).Int("row", i).Str("station", record.Station).Msg("Skipping station reference row")
			continue
		}

		rows = append(rows, row)
	}

	return NewTable(rows)
}
