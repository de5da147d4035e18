package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	ordersource "github.com/openclob/bookmatch/internal/usecase/order-source"
	"github.com/openclob/bookmatch/pkg/config"
)

func main() {
	var (
		pipeName     = flag.String("pipe", "order_pipe", "name of the pipe to send orders over")
		ordersFile   = flag.String("file", "", "path to a file of orders to replay")
		generateFile = flag.String("generate", "", "path of a generated orders file (instead of sending)")
		count        = flag.Int("count", 100, "number of orders to generate")
		delay        = flag.Duration("delay", 0, "delay between orders")
		seed         = flag.Int64("seed", 1, "random number seed")
		minQuantity  = flag.Int64("min-quantity", 10, "minimum order quantity")
		maxQuantity  = flag.Int64("max-quantity", 200, "maximum order quantity")
		minPrice     = flag.Int64("min-price", 90, "minimum order price")
		maxPrice     = flag.Int64("max-price", 130, "maximum order price")
		instruments  = flag.String("instruments", "IBM,AMZN", "comma-separated instruments to generate orders for")
		customers    = flag.String("customers", "Jane,Bob,Chris,Mark,Phillip", "comma-separated customers to generate orders for")
	)
	flag.Parse()

	generatorConfig := config.GeneratorConfig{
		Count:       *count,
		Seed:        *seed,
		MinQuantity: *minQuantity,
		MaxQuantity: *maxQuantity,
		MinPrice:    *minPrice,
		MaxPrice:    *maxPrice,
		Instruments: strings.Split(*instruments, ","),
		Customers:   strings.Split(*customers, ","),
		Delay:       *delay,
	}

	var err error
	switch {
	case *generateFile != "":
		err = writeOrdersFile(*generateFile, generatorConfig)
	case *ordersFile != "":
		err = replayOrdersFile(*ordersFile, *pipeName)
	default:
		err = sendGeneratedOrders(*pipeName, generatorConfig)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// sendGeneratedOrders streams random orders over the pipe.
func sendGeneratedOrders(pipeName string, cfg config.GeneratorConfig) error {
	pipe, err := openPipe(pipeName)
	if err != nil {
		return err
	}
	defer pipe.Close()

	generator := ordersource.NewGenerator(cfg)
	ctx := context.Background()
	for {
		req, err := generator.Next(ctx)
		if err == ordersourcev1.ErrEndOfStream {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(pipe, encodeRecord(req)); err != nil {
			return err
		}
	}
}

// replayOrdersFile streams the records of a header-tagged orders file over the pipe.
func replayOrdersFile(path, pipeName string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	pipe, err := openPipe(pipeName)
	if err != nil {
		return err
	}
	defer pipe.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil { // skip header
		return err
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(pipe, strings.Join(row, ",")); err != nil {
			return err
		}
	}
}

// writeOrdersFile generates a new header-tagged orders file.
func writeOrdersFile(path string, cfg config.GeneratorConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(ordersourcev1.RecordFields); err != nil {
		return err
	}

	generator := ordersource.NewGenerator(cfg)
	ctx := context.Background()
	for {
		req, err := generator.Next(ctx)
		if err == ordersourcev1.ErrEndOfStream {
			break
		}
		if err != nil {
			return err
		}
		row := []string{
			req.Customer,
			req.Instrument,
			string(req.Side),
			strconv.FormatInt(req.Quantity, 10),
			strconv.FormatInt(req.Price, 10),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// openPipe creates the FIFO if absent and opens it for writing. The open
// blocks until the order book connects as reader.
func openPipe(name string) (*os.File, error) {
	if _, err := os.Stat(name); os.IsNotExist(err) {
		if err := syscall.Mkfifo(name, 0o666); err != nil {
			return nil, err
		}
	}
	log.Printf("waiting for reader on pipe %s", name)
	pipe, err := os.OpenFile(name, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	log.Printf("pipe %s opened for writing", name)
	return pipe, nil
}

// encodeRecord renders a record in the fixed field order Customer,Item,Side,Quantity,Price.
func encodeRecord(req orderbookv1.OrderRequest) string {
	return fmt.Sprintf("%s,%s,%s,%d,%d",
		req.Customer, req.Instrument, req.Side, req.Quantity, req.Price)
}
