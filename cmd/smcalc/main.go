package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/edp1096/sparsecalc"
)

var log = logging.Logger("smcalc")

// run reads commands from in until EOF or exit. Errors are reported and the
// loop continues; retrying is up to the user.
func (a *App) run(in io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0

	for {
		if prompt {
			fmt.Fprintf(a.out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		lineNumber++

		quit, err := a.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			log.Debugf("line %d: %v", lineNumber, err)
		}
		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading commands: %v", err)
	}
	return nil
}

func printResourceUsage(w io.Writer, startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Fprintf(w, "\nAggregate resource usage:\n")
	fmt.Fprintf(w, "    Time required = %.4f seconds.\n", time.Since(startTime).Seconds())
	fmt.Fprintf(w, "    Heap memory used = %d kBytes\n", m.HeapAlloc/1024)
	fmt.Fprintf(w, "    Total memory from OS = %d kBytes\n\n", m.Sys/1024)
}

func main() {
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	printerWidth := flag.Int("width", sparsecalc.DEFAULT_PRINTER_WIDTH, "Printer width for full view")
	precision := flag.Int("precision", sparsecalc.DEFAULT_PRECISION, "Digits after the decimal point")
	purgeZeros := flag.Bool("purge", false, "Delete entries that become zero after scalar")
	maxElements := flag.Int("max-elements", 0, "Element limit per matrix, 0 for none")
	filename := flag.String("f", "", "Read commands from file instead of stdin")
	usage := flag.Bool("u", false, "Print resource usage on exit")
	flag.Parse()

	startTime := time.Now()
	progName := filepath.Base(os.Args[0])

	if err := logging.SetLogLevel("*", *logLevel); err != nil {
		fmt.Printf("%s: %v\n", progName, err)
		os.Exit(1)
	}

	config := sparsecalc.Configuration{
		ZeroInsert:            sparsecalc.ZeroIgnore,
		PurgeZeros:            *purgeZeros,
		MaxElements:           *maxElements,
		ElementsPerAllocation: sparsecalc.DEFAULT_ELEMENTS_PER_ALLOCATION,
		PrinterWidth:          *printerWidth,
		Precision:             *precision,
	}

	a := NewApp(os.Stdout, config)
	defer a.registry.Release()

	in := io.Reader(os.Stdin)
	prompt := true
	if *filename != "" {
		file, err := os.Open(*filename)
		if err != nil {
			fmt.Printf("%s: error opening file: %v\n", progName, err)
			os.Exit(1)
		}
		defer file.Close()
		in = file
		prompt = false
	} else {
		fmt.Printf("Sparse matrix calculator\nType help for the command list.\n\n")
	}

	if err := a.run(in, prompt); err != nil {
		fmt.Printf("%s: %v\n", progName, err)
		os.Exit(1)
	}

	if *usage {
		printResourceUsage(os.Stdout, startTime)
	}
}
