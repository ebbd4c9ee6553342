package commands

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stackdriver/stackdriver-go/pkg/sdclient"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	NotAvailable = "N/A"
)

// createClient builds a client from the resolved CLI configuration.
func createClient() (stackdriver.Client, error) {
	config := &stackdriver.Config{
		Endpoint: viper.GetString("api"),
		APIKey:   viper.GetString("apikey"),
		Debug:    viper.GetBool("verbose"),
	}

	return sdclient.New(config)
}

// renderRecords writes a record list in the configured output format. Table
// output shows the columns common to every collection plus the given extra
// fields.
func renderRecords(records []stackdriver.Record, extraFields ...string) error {
	output := viper.GetString("output")

	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(records)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(records)
	default:
		return renderRecordsTable(records, extraFields...)
	}
}

func renderRecordsTable(records []stackdriver.Record, extraFields ...string) error {
	headers := append([]string{"ID", "Name"}, extraFields...)

	headerCells := make([]any, len(headers))
	for i, header := range headers {
		headerCells[i] = header
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headerCells...)

	for _, record := range records {
		row := []any{valueOr(record.ID()), valueOr(record.StringField("name"))}
		for _, field := range extraFields {
			row = append(row, valueOr(record.StringField(field)))
		}

		_ = table.Append(row...)
	}

	return table.Render()
}

// renderRecord writes a single record in the configured output format. Table
// output lists fields alphabetically.
func renderRecord(record stackdriver.Record) error {
	output := viper.GetString("output")

	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(record)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(record)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		fields := make([]string, 0, len(record))
		for field := range record {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		for _, field := range fields {
			_ = table.Append(field, formatFieldValue(record[field]))
		}

		return table.Render()
	}
}

func formatFieldValue(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case nil:
		return NotAvailable
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return NotAvailable
		}

		return string(encoded)
	}
}

func valueOr(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
