package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	_ "time/tzdata"

	"addressbook-api/internal/app"
	"addressbook-api/internal/apperrors"
	"addressbook-api/internal/config"
	"addressbook-api/internal/metrics"
	"addressbook-api/internal/models"
)

var columns = []string{"name", "email", "phone", "street", "city", "country", "postal"}

// creator is the part of the address service the importer needs.
type creator interface {
	Create(ctx context.Context, in models.PersonCreate) (*models.MutationResult, error)
}

type importResult struct {
	Created int
	Skipped int
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	application, err := app.Build(ctx, cfg, metrics.Nop())
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	res, err := importRecords(ctx, application.Service, records, os.Stdout)
	if err != nil {
		fmt.Printf("Error importing records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d records, skipped %d\n", res.Created, res.Skipped)
}

// parseCSV reads a header row naming the columns above, in any order,
// followed by one person per row. postal may be omitted.
func parseCSV(r io.Reader) ([]models.PersonCreate, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok && c != "postal" {
			return nil, fmt.Errorf("missing column %q in header", c)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var records []models.PersonCreate
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		records = append(records, models.PersonCreate{
			Name:  field(record, "name"),
			Email: field(record, "email"),
			Phone: field(record, "phone"),
			Address: models.AddressInput{
				Street:  field(record, "street"),
				City:    field(record, "city"),
				Country: field(record, "country"),
				Postal:  field(record, "postal"),
			},
		})
	}

	return records, nil
}

// importRecords creates each record through the service. Rows the service
// rejects are reported and skipped; storage and context failures abort.
func importRecords(ctx context.Context, svc creator, records []models.PersonCreate, out io.Writer) (importResult, error) {
	var res importResult
	for i, rec := range records {
		if _, err := svc.Create(ctx, rec); err != nil {
			if apperrors.IsKind(err, apperrors.KindStorage) || ctx.Err() != nil {
				return res, fmt.Errorf("row %d: %w", i+2, err)
			}
			fmt.Fprintf(out, "Skipping row %d (%s): %v\n", i+2, rec.Email, err)
			res.Skipped++
			continue
		}
		res.Created++
	}
	return res, nil
}
