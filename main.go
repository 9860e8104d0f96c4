package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/extract"
	"github.com/leadprobe/leadprobe/log"
	"github.com/leadprobe/leadprobe/page"
)

var (
	input  = flag.String("input", "-", "Rendered HTML file to mine, or - for stdin")
	record = flag.String("record", "", "Optional JSON business record file to enrich with the results")
)

func main() {
	godotenv.Load()
	flag.Parse()

	log := log.NewLogger("main")

	markup, err := readInput(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to read input")
	}

	artifacts, err := page.Parse(markup)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page")
	}

	pipeline := extract.NewPipeline()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *record == "" {
		if err := enc.Encode(pipeline.Run(artifacts)); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode bundle")
		}
		return
	}

	rec, err := readRecord(*record)
	if err != nil {
		log.Fatal().Err(err).Str("record", *record).Msg("Failed to read record")
	}

	if err := enc.Encode(pipeline.Enhance(artifacts, rec)); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode record")
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		body, err := io.ReadAll(os.Stdin)
		return string(body), err
	}

	body, err := os.ReadFile(path)
	return string(body), err
}

func readRecord(path string) (contact.Record, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec contact.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}

	return rec, nil
}
