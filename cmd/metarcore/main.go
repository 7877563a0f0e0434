package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rmitchellscott/metarcore"
)

// readFromStdin returns one raw report when input is piped in.
func readFromStdin() (string, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", false
	}
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func main() {
	noRaw := flag.Bool("no-raw", false, "Hide the raw report")
	noColor := flag.Bool("no-color", false, "Disable color output")
	legacyM := flag.Bool("legacy-m-routing", false, "Route all M-prefixed stations through the US pipeline")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	raw, ok := readFromStdin()
	if !ok {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "Usage: metarcore [flags] RAW REPORT ...")
			fmt.Fprintln(os.Stderr, "       echo 'RAW REPORT' | metarcore [flags]")
			flag.PrintDefaults()
			os.Exit(2)
		}
		raw = strings.Join(flag.Args(), " ")
	}

	cfg := metarcore.Config{LegacyVariantPrecedence: *legacyM}
	report, err := metarcore.DecodeWithConfig(cfg, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*noRaw {
		fmt.Println("Raw METAR:")
		fmt.Println(report.Raw)
		fmt.Println()
	}
	fmt.Println("Decoded METAR:")
	fmt.Print(metarcore.FormatReport(report))
}
