package zoriclean

import (
	"errors"
	"io"

	"github.com/datakits/zoriclean-go/pkg/zoriclean/models"
	"github.com/datakits/zoriclean-go/pkg/zoriclean/output"
	"github.com/datakits/zoriclean-go/pkg/zoriclean/parser"
)

// Clean reads the dataset at inputPath, keeps the rows whose RegionName
// matches the configured city list, optionally reshapes them into the long
// layout, and writes the result to outputPath. Parent directories of the
// output are created as needed.
func Clean(inputPath, outputPath string, opts Options) (*models.Summary, error) {
	src, err := parser.OpenSource(inputPath)
	if err != nil {
		return nil, NewCleanError("open", err)
	}
	defer src.Close()

	header := src.Header()

	regionIdx, ok := parser.ResolveRegionColumn(header)
	if !ok {
		return nil, NewCleanError("columns", ErrRegionColumnMissing)
	}

	// In wide mode every column passes through, so the boundary sits past
	// the end of the header.
	dateStart := len(header)
	if opts.Long {
		dateStart, ok = parser.ResolveDateStart(header)
		if !ok {
			return nil, NewCleanError("columns", ErrDateColumnsNotFound)
		}
	}

	sink, err := output.NewSink(outputPath)
	if err != nil {
		return nil, NewCleanError("write", err)
	}
	closed := false
	defer func() {
		if !closed {
			sink.Close()
		}
	}()

	outHeader := header
	if opts.Long {
		outHeader = make([]string, 0, dateStart+2)
		outHeader = append(outHeader, header[:dateStart]...)
		outHeader = append(outHeader, "Date", "Value")
	}
	if err := sink.Write(outHeader); err != nil {
		return nil, NewCleanError("write", err)
	}

	targets := parser.TargetSet(opts.TargetCities())

	kept, total := 0, 0
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewCleanError("stream", err)
		}
		total++

		rec := models.Record(row)
		if regionIdx >= len(row) {
			continue
		}
		if _, ok := targets[parser.NormalizeCity(rec.Field(regionIdx))]; !ok {
			continue
		}
		kept++

		if !opts.Long {
			if err := sink.Write(row); err != nil {
				return nil, NewCleanError("write", err)
			}
			continue
		}

		meta := make([]string, dateStart)
		for i := range meta {
			meta[i] = rec.Field(i)
		}
		for i := dateStart; i < len(header); i++ {
			value := rec.Field(i)
			if value == "" {
				continue
			}
			out := make([]string, 0, dateStart+2)
			out = append(out, meta...)
			out = append(out, header[i], value)
			if err := sink.Write(out); err != nil {
				return nil, NewCleanError("write", err)
			}
		}
	}

	closed = true
	if err := sink.Close(); err != nil {
		return nil, NewCleanError("write", err)
	}

	return &models.Summary{Kept: kept, Total: total, OutputPath: outputPath}, nil
}
