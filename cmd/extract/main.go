// Command extract runs the requirement extraction pipeline against a local
// document and writes the interchange JSON, without needing the service,
// database, or blob storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/loom/internal/extraction"
)

func main() {
	var (
		in       = flag.String("in", "", "Input document path (.pdf or plain text)")
		out      = flag.String("out", "", "Output path for interchange JSON (default stdout)")
		maxPages = flag.Int("max-pages", 0, "Maximum pages to process (0 = all)")
		quiet    = flag.Bool("quiet", false, "Suppress extraction logging")
	)
	flag.Parse()

	if *in == "" {
		fmt.Println("usage: extract -in <document> [-out <json>] [-max-pages N]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	src, err := buildSource(*in, data)
	if err != nil {
		log.Fatalf("failed to open source: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *quiet {
		logger = slog.New(slog.DiscardHandler)
	}

	reqs, err := extraction.New(logger).Extract(
		context.Background(),
		src,
		extraction.Options{MaxPages: *maxPages},
	)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	dest := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create output: %v", err)
		}
		defer f.Close()
		dest = f
	}

	if err := extraction.WriteDocument(dest, extraction.NewDocument(reqs)); err != nil {
		log.Fatalf("failed to write interchange document: %v", err)
	}
}

func buildSource(path string, data []byte) (extraction.Source, error) {
	name := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extraction.NewPDFSource(name, data)
	}
	return extraction.NewTextSource(name, string(data)), nil
}
