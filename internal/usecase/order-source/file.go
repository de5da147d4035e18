package ordersource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
)

// FileSource reads order records from a header-tagged tabular file. Columns
// are located by header name, so column order in the file is free.
type FileSource struct {
	file   *os.File
	reader *csv.Reader
	index  map[string]int
	logger logger.Interface
}

// NewFileSource opens the orders file and consumes its header row.
func NewFileSource(path string, log logger.Interface) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewTracer(errors.SourceUnavailableError).Wrap(err)
	}

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, errors.NewTracer(errors.SourceReadError).Wrap(err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range ordersourcev1.RecordFields {
		if _, ok := index[name]; !ok {
			file.Close()
			return nil, errors.NewTracer(errors.SourceReadError).
				Wrap(fmt.Errorf("orders file %s: missing column %q", path, name))
		}
	}

	return &FileSource{
		file:   file,
		reader: reader,
		index:  index,
		logger: log,
	}, nil
}

// Next returns the next order record from the file.
func (s *FileSource) Next(ctx context.Context) (orderbookv1.OrderRequest, error) {
	var req orderbookv1.OrderRequest

	if err := ctx.Err(); err != nil {
		return req, err
	}

	row, err := s.reader.Read()
	if err == io.EOF {
		return req, ordersourcev1.ErrEndOfStream
	}
	if err != nil {
		s.logger.Error(err, logger.Field{Key: "operation", Value: "ReadRow"})
		return req, errors.NewTracer(errors.MalformedRecordError).Wrap(err)
	}

	fields := make([]string, len(ordersourcev1.RecordFields))
	for i, name := range ordersourcev1.RecordFields {
		fields[i] = row[s.index[name]]
	}
	return ordersourcev1.ParseFields(fields)
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	return s.file.Close()
}
