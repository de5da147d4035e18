package ordersourcev1

import (
	"fmt"
	"strconv"
	"strings"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/errors"
)

// RecordFields is the fixed field order of the order wire form, and the
// header row of the tabular file form.
var RecordFields = []string{"Customer", "Item", "Side", "Quantity", "Price"}

// ParseRecord parses one comma-separated order record in the fixed field
// order Customer,Item,Side,Quantity,Price.
func ParseRecord(line string) (orderbookv1.OrderRequest, error) {
	return ParseFields(strings.Split(line, ","))
}

// ParseFields parses an already-split order record. Surrounding whitespace
// on each field is ignored.
func ParseFields(fields []string) (orderbookv1.OrderRequest, error) {
	var req orderbookv1.OrderRequest

	if len(fields) != len(RecordFields) {
		return req, errors.NewTracer(errors.MalformedRecordError).
			Wrap(fmt.Errorf("expected %d fields, got %d", len(RecordFields), len(fields)))
	}

	trimmed := make([]string, len(fields))
	for i, field := range fields {
		trimmed[i] = strings.TrimSpace(field)
	}

	side := orderbookv1.Side(trimmed[2])
	if side != orderbookv1.SideBuy && side != orderbookv1.SideSell {
		return req, errors.NewTracer(errors.MalformedRecordError).
			Wrap(fmt.Errorf("unknown side %q", trimmed[2]))
	}

	quantity, err := strconv.ParseInt(trimmed[3], 10, 64)
	if err != nil {
		return req, errors.NewTracer(errors.MalformedRecordError).Wrap(err)
	}

	price, err := strconv.ParseInt(trimmed[4], 10, 64)
	if err != nil {
		return req, errors.NewTracer(errors.MalformedRecordError).Wrap(err)
	}

	return orderbookv1.OrderRequest{
		Customer:   trimmed[0],
		Instrument: trimmed[1],
		Side:       side,
		Quantity:   quantity,
		Price:      price,
	}, nil
}
