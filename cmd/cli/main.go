package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"fuelprice-validation/internal/config"
	"fuelprice-validation/internal/data"
	"fuelprice-validation/internal/report"
	"fuelprice-validation/internal/validation"
)

func main() {
	log.SetFlags(0)

	fs := flag.NewFlagSet("cli", flag.ExitOnError)
	fs.Usage = func() {
		usage()
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "", "Optional: YAML or TOML dataset config")
	datasetDir := fs.String("dataset", "", "Optional: dataset directory or s3:// prefix (overrides config)")
	csvPath := fs.String("csv", "", "Optional: also write missing dates as CSV")
	xlsxPath := fs.String("xlsx", "", "Optional: also write missing dates and summary as XLSX")
	verbose := fs.Bool("v", false, "Log a per-fuel summary to stderr")
	_ = fs.Parse(os.Args[1:])

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("could not load config: %v", err)
		}
		cfg = loaded
	}
	ds := cfg.Dataset
	if *datasetDir != "" {
		ds.Dir = *datasetDir
	}

	ctx := context.Background()
	src, err := data.NewSource(ctx, ds.URIs()...)
	if err != nil {
		log.Fatal(err)
	}

	rep, err := validation.Run(ctx, src, ds.Inputs())
	if err != nil {
		log.Fatal(err)
	}

	if err := report.WriteText(os.Stdout, rep); err != nil {
		log.Fatal(err)
	}

	if *csvPath != "" {
		if err := report.WriteCSVFile(*csvPath, rep); err != nil {
			log.Fatalf("could not write csv: %v", err)
		}
	}
	if *xlsxPath != "" {
		if err := report.WriteXLSXFile(*xlsxPath, rep); err != nil {
			log.Fatalf("could not write xlsx: %v", err)
		}
	}

	if *verbose {
		log.Printf("%-12s %-9s %-8s %-8s %-7s", "fuel", "accepted", "present", "missing", "stored")
		for _, s := range rep.Summary {
			log.Printf("%-12s %-9d %-8d %-8d %-7d", s.FuelType.Label(), s.Accepted, s.Present, s.Missing, s.Stored)
		}
		log.Printf("export lines=%d ignored=%d", rep.ExportLines, rep.Ignored)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  cli")
	fmt.Fprintln(os.Stderr, "  cli --config dataset.yaml --csv results/missing.csv --xlsx results/missing.xlsx -v")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "notes:")
	fmt.Fprintln(os.Stderr, "  - with no flags, reads datasets/2022-04-30/{ok_unleaded95,ok_diesel,ok_octane100}.json")
	fmt.Fprintln(os.Stderr, "    and datasets/2022-04-30/dynamo_s3_export.json")
	fmt.Fprintln(os.Stderr, "  - prints '<FUEL> ok date <date> not found in ddb' for every accepted date missing from the export")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "flags:")
}
