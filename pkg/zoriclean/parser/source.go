package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
)

// RowSource streams data rows from an input file. The header row is consumed
// when the source is opened.
type RowSource interface {
	// Header returns the column names read from the first row.
	Header() []string
	// Next returns the next data row, or io.EOF when the input is
	// exhausted. Rows may be shorter than the header.
	Next() ([]string, error)
	// Close releases the underlying file handle.
	Close() error
}

// OpenSource opens the file at path as a row source. Files with an .xlsx
// extension are read as Excel workbooks; everything else is read as CSV.
func OpenSource(path string) (RowSource, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return openXLSXSource(path)
	}
	return openCSVSource(path)
}

type csvSource struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

func openCSVSource(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// Decode as UTF-8 with replacement: invalid byte sequences become
	// U+FFFD instead of failing the run.
	decoded := unicode.UTF8.NewDecoder().Reader(f)
	r := csv.NewReader(decoded)
	r.FieldsPerRecord = -1 // ragged rows are tolerated downstream

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}

	return &csvSource{file: f, reader: r, header: header}, nil
}

func (s *csvSource) Header() []string { return s.header }

func (s *csvSource) Next() ([]string, error) {
	return s.reader.Read()
}

func (s *csvSource) Close() error {
	return s.file.Close()
}

type xlsxSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
}

func openXLSXSource(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, err
	}

	if !rows.Next() {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	header, err := rows.Columns()
	if err != nil {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}

	return &xlsxSource{file: f, rows: rows, header: header}, nil
}

func (s *xlsxSource) Header() []string { return s.header }

func (s *xlsxSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}

func (s *xlsxSource) Close() error {
	s.rows.Close()
	return s.file.Close()
}
