package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"go-portal/pkg/utils"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeFiltered Scope = "filtered"
	ScopeSelected Scope = "selected"
)

// Column pairs a field id with its header label in the output.
type Column struct {
	ID     string
	Header string
}

// File is a finished export ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExportService interface {
	Build(entity string, columns []Column, rows [][]string, scope Scope, format Format) (*File, error)
}

type ExportServiceImpl struct{}

func NewExportService() ExportService {
	return &ExportServiceImpl{}
}

// Build serializes rows under the given columns. Delimited formats quote a
// field (doubling embedded quotes) whenever it contains the delimiter, a
// quote, or a newline.
func (s *ExportServiceImpl) Build(entity string, columns []Column, rows [][]string, scope Scope, format Format) (*File, error) {
	var data []byte
	var err error

	switch format {
	case FormatCSV:
		data, err = writeDelimited(columns, rows, ',')
	case FormatTSV:
		data, err = writeDelimited(columns, rows, '\t')
	case FormatXLSX:
		data, err = writeExcel(columns, rows)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        Filename(entity, scope, len(rows), format, time.Now()),
		ContentType: contentType(format),
		Data:        data,
	}, nil
}

// Filename follows the portal convention <entity>-<ISO-date>-<scope>-<count>.<ext>.
func Filename(entity string, scope Scope, count int, format Format, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%d.%s", utils.Slugify(entity), at.Format("2006-01-02"), scope, count, format)
}

func writeDelimited(columns []Column, rows [][]string, delimiter rune) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = delimiter

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeExcel(columns []Column, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contentType(format Format) string {
	switch format {
	case FormatTSV:
		return "text/tab-separated-values"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}
