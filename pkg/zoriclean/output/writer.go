// Package output writes cleaned rows to delimited or Excel files.
package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowSink consumes output rows. The first row written is the header.
type RowSink interface {
	// Write appends one row to the output.
	Write(record []string) error
	// Close flushes buffered rows and releases the file. Flush errors are
	// reported here, so callers must check the returned error.
	Close() error
}

// NewSink creates the output file at path, creating parent directories as
// needed and truncating any existing file. Paths with an .xlsx extension
// produce an Excel workbook; everything else produces CSV with the same
// quoting conventions as the reader.
func NewSink(path string) (RowSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return newXLSXSink(path), nil
	}
	return newCSVSink(path)
}

type csvSink struct {
	file   *os.File
	writer *csv.Writer
}

func newCSVSink(path string) (*csvSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &csvSink{file: f, writer: csv.NewWriter(f)}, nil
}

func (s *csvSink) Write(record []string) error {
	return s.writer.Write(record)
}

func (s *csvSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

type xlsxSink struct {
	file *excelize.File
	path string
	row  int
}

func newXLSXSink(path string) *xlsxSink {
	return &xlsxSink{file: excelize.NewFile(), path: path, row: 1}
}

func (s *xlsxSink) Write(record []string) error {
	for i, value := range record {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return err
		}
		if err := s.file.SetCellValue("Sheet1", cell, value); err != nil {
			return err
		}
	}
	s.row++
	return nil
}

func (s *xlsxSink) Close() error {
	defer s.file.Close()
	return s.file.SaveAs(s.path)
}
