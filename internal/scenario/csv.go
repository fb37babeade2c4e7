// Package scenario implements the tabular import/export collaborators around
// the simulation engine: reading scenario parameters from CSV (one scenario
// per data row), generating a blank parameter template with a field-by-field
// instruction sheet, and exporting a computed trace as a day-indexed CSV.
//
// The importer owns all text-to-number parsing and reports its own
// row/column-addressed errors; the engine only ever receives parsed numbers.
package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/epiforge/seirsim/internal/models"
)

// Columns is the canonical template column set, in template order.
var Columns = []string{
	"scenario_year",
	"scenario_name",
	"total_population",
	"initial_infectious",
	"initial_exposed",
	"initial_recovered",
	"base_transmission_rate",
	"incubation_days",
	"infectious_days",
	"duration_days",
	"seasonal_forcing",
}

// FieldDoc describes one template column for the instruction sheet.
type FieldDoc struct {
	Column      string
	Description string
}

// FieldDocs returns the per-column descriptions used by the instruction sheet.
func FieldDocs() []FieldDoc {
	return []FieldDoc{
		{"scenario_year", "Reference year of the scenario data (e.g. 2024). Leave empty for an undated scenario."},
		{"scenario_name", "Name of the place or region (e.g. 'Brazil', 'Oaxaca de Juarez')."},
		{"total_population", "Total number of inhabitants."},
		{"initial_infectious", "People already sick on day 0 of the simulation."},
		{"initial_exposed", "People incubating (infected, no symptoms yet) on day 0."},
		{"initial_recovered", "People already immune or recovered before day 0."},
		{"base_transmission_rate", "Average contagion intensity per day (β0)."},
		{"incubation_days", "Average incubation period of the disease, in days."},
		{"infectious_days", "Average number of days a sick person is contagious."},
		{"duration_days", "Total days to simulate (e.g. 365 for one year)."},
		{"seasonal_forcing", "How strongly the climate modulates contagion, 0 (none) to 1 (very strong)."},
	}
}

// ReadFile parses a scenario CSV from disk. See Parse.
func ReadFile(path string) ([]models.ScenarioParameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a scenario CSV: a header row naming the template columns (in
// any order) followed by one scenario per data row. All columns must be
// present. An empty scenario_year means no reference year.
func Parse(r io.Reader) ([]models.ScenarioParameters, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("scenario file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("scenario file is missing columns: %s", strings.Join(missing, ", "))
	}

	var scenarios []models.ScenarioParameters
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		params, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		scenarios = append(scenarios, params)
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario file has no data rows")
	}
	return scenarios, nil
}

func parseRow(record []string, index map[string]int) (models.ScenarioParameters, error) {
	var params models.ScenarioParameters

	cell := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	number := func(col string, dst *float64) error {
		text := cell(col)
		if text == "" {
			return fmt.Errorf("column %q is empty", col)
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("column %q must be numeric, got %q", col, text)
		}
		*dst = v
		return nil
	}

	params.Name = cell("scenario_name")

	if text := cell("scenario_year"); text != "" {
		// Years may arrive as "2024" or "2024.0" from spreadsheet exports.
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return params, fmt.Errorf("column %q must be numeric, got %q", "scenario_year", text)
		}
		params.Year = int(v)
	}

	for _, field := range []struct {
		col string
		dst *float64
	}{
		{"total_population", &params.Population},
		{"initial_infectious", &params.InitialInfectious},
		{"initial_exposed", &params.InitialExposed},
		{"initial_recovered", &params.InitialRecovered},
		{"base_transmission_rate", &params.BaseTransmissionRate},
		{"incubation_days", &params.IncubationDays},
		{"infectious_days", &params.InfectiousDays},
		{"seasonal_forcing", &params.SeasonalForcing},
	} {
		if err := number(field.col, field.dst); err != nil {
			return params, err
		}
	}

	var days float64
	if err := number("duration_days", &days); err != nil {
		return params, err
	}
	params.DurationDays = int(days)

	return params, nil
}

// WriteTemplate writes a blank scenario CSV holding only the header row.
func WriteTemplate(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// WriteTemplateFile writes the blank template to path.
func WriteTemplateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create template file: %w", err)
	}
	defer f.Close()
	return WriteTemplate(f)
}

// WriteInstructions writes the human-readable description of every template
// column, mirroring the instruction sheet shipped with the original template.
func WriteInstructions(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Scenario template fields\n")
	b.WriteString("========================\n\n")
	for _, doc := range FieldDocs() {
		fmt.Fprintf(&b, "%-24s %s\n", doc.Column, doc.Description)
	}
	b.WriteString("\nEach data row is one scenario; a batch run simulates every row.\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTrace exports a computed trace as CSV with one row per simulated day.
func WriteTrace(w io.Writer, trace *models.SimulationTrace) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"day", "susceptible", "exposed", "infectious", "recovered", "beta"}); err != nil {
		return fmt.Errorf("failed to write trace header: %w", err)
	}
	for day := 0; day < trace.Days; day++ {
		record := []string{
			strconv.Itoa(day),
			strconv.FormatFloat(trace.Susceptible[day], 'f', -1, 64),
			strconv.FormatFloat(trace.Exposed[day], 'f', -1, 64),
			strconv.FormatFloat(trace.Infectious[day], 'f', -1, 64),
			strconv.FormatFloat(trace.Recovered[day], 'f', -1, 64),
			strconv.FormatFloat(trace.Beta[day], 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write trace row %d: %w", day, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
