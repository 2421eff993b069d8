package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/insightdelivered/bank-notification-parser/internal/api"
	"github.com/insightdelivered/bank-notification-parser/internal/config"
	"github.com/insightdelivered/bank-notification-parser/internal/extractor"
	"github.com/insightdelivered/bank-notification-parser/internal/models"
	"github.com/insightdelivered/bank-notification-parser/internal/parser"
	"github.com/insightdelivered/bank-notification-parser/internal/writer"
)

func main() {
	// CLI flags
	packageFlag := flag.String("package", "", "App package name applied to records that carry none")
	senderFlag := flag.String("sender", "", "SMS sender code applied to records that carry none")
	bankFlag := flag.String("bank", "", "Force one bank by name, alias or type (auto-detected if omitted)")
	formatFlag := flag.String("format", "csv", "Output format: csv or json")
	outputFlag := flag.String("output", "", "Output file path (defaults to stdout)")
	headerFlag := flag.Bool("header", true, "Include summary rows before the CSV header")
	listFlag := flag.Bool("list", false, "List supported banks and exit")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of parsing files")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Notification Parser

Extracts incoming transfers (amount, sender, balance) from Russian bank
SMS and push notifications.

Usage:
  bank-notification-parser [flags] [input ...]

Input files ending in .csv need a "message" column and may carry "package"
and "sender" columns. Files ending in .jsonl or .ndjson hold one JSON object
per line. Anything else is read as one message per line. Without input
files messages are read from stdin.

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Parse SMS exported one per line, auto-detecting the bank
  bank-notification-parser sms.txt

  # Messages from the Tinkoff app, as JSON
  bank-notification-parser --package=com.idamob.tinkoff.android --format=json push.txt

  # Force a parser
  bank-notification-parser --bank=sberbank --output=credits.csv sms.csv

  # Run the HTTP API (LISTEN_ADDR, CACHE_TTL, MAX_MESSAGE_LEN, LOG_LEVEL)
  bank-notification-parser --serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bank-notification-parser v%s\n", api.Version)
		os.Exit(0)
	}

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
	})

	reg := parser.Default()

	if *listFlag {
		listBanks(os.Stdout, reg)
		return
	}

	if *serveFlag {
		if err := serve(cfg, reg, logger); err != nil {
			logger.Fatal("server stopped", "err", err)
		}
		return
	}

	if *formatFlag != "csv" && *formatFlag != "json" {
		fatalf("Unknown output format %q. Supported: csv, json\n", *formatFlag)
	}

	// Validate bank flag if provided
	var forced parser.Parser
	if *bankFlag != "" {
		p, ok := reg.Lookup(*bankFlag)
		if !ok {
			fatalf("Unknown bank %q. Run with --list to see supported banks\n", *bankFlag)
		}
		forced = p
	}

	records, err := readInput(flag.Args())
	if err != nil {
		logger.Fatal("failed to read input", "err", err)
	}

	outcomes := process(reg, forced, records, *packageFlag, *senderFlag)

	matched := 0
	for _, o := range outcomes {
		if o.Matched() {
			matched++
		}
	}
	logger.Info("parsed notifications", "records", len(outcomes), "matched", matched)
	if len(outcomes) > 0 && matched == 0 {
		logger.Warn("no notification matched a known format; check the --package or --sender hints")
	}

	if err := writeOutput(outcomes, *formatFlag, *outputFlag, *headerFlag); err != nil {
		logger.Fatal("failed to write output", "err", err)
	}
}

func readInput(paths []string) ([]models.Notification, error) {
	if len(paths) == 0 {
		return extractor.Read(os.Stdin, extractor.FormatText)
	}

	var records []models.Notification
	for _, path := range paths {
		recs, err := extractor.ReadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// process parses every record. Hints fill in records that carry none; a
// forced parser bypasses detection entirely.
func process(reg *parser.Registry, forced parser.Parser, records []models.Notification, pkg, sender string) []models.Outcome {
	outcomes := make([]models.Outcome, 0, len(records))
	for _, n := range records {
		if n.PackageName == "" {
			n.PackageName = pkg
		}
		if n.SenderCode == "" {
			n.SenderCode = sender
		}

		o := models.Outcome{Notification: n}
		if forced != nil {
			if tx, ok := forced.Parse(n.Message); ok {
				o.Bank, o.BankType, o.Transaction = forced.BankName(), forced.BankType(), &tx
			}
		} else if res, ok := reg.ParseMessage(n.Message, n.PackageName, n.SenderCode); ok {
			tx := res.Transaction
			o.Bank, o.BankType, o.Transaction = res.Parser.BankName(), res.Parser.BankType(), &tx
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func writeOutput(outcomes []models.Outcome, format, outputPath string, includeHeader bool) error {
	switch format {
	case "json":
		w := &writer.JSONWriter{Indent: true}
		if outputPath != "" {
			return w.WriteToFile(outputPath, outcomes)
		}
		return w.Write(os.Stdout, outcomes)
	default:
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		if outputPath != "" {
			return w.WriteToFile(outputPath, outcomes)
		}
		return w.Write(os.Stdout, outcomes)
	}
}

func listBanks(out io.Writer, reg *parser.Registry) {
	for _, p := range reg.Parsers() {
		fmt.Fprintf(out, "%-22s %-15s", p.BankName(), p.BankType())
		if pkgs := p.PackageNames(); len(pkgs) > 0 {
			fmt.Fprintf(out, " packages: %s", strings.Join(pkgs, ", "))
		}
		if codes := p.SenderCodes(); len(codes) > 0 {
			fmt.Fprintf(out, " senders: %s", strings.Join(codes, ", "))
		}
		fmt.Fprintln(out)
	}
}

func serve(cfg config.Config, reg *parser.Registry, logger *log.Logger) error {
	app := api.NewApp(api.NewHandler(reg, cfg.CacheTTL, cfg.MaxMessageLen, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr, "banks", len(reg.BankNames()))
		errc <- app.Listen(cfg.ListenAddr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
