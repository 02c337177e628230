package locality

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
	"tracker/pkg/timezone"
)

// DefaultBatchSize is the number of records stored per statement by Import.
const DefaultBatchSize = 500

// CSVColumns are the columns of a gazetteer file, in order. The header row is required.
func CSVColumns() []string {
	return []string{"location", "city", "state", "zip", "country", "timezone"}
}

// ReadCSV parses a gazetteer file. Locations are canonicalized with
// timezone.Key and timezones may be IANA names or abbreviations.
func ReadCSV(r io.Reader) ([]storage.LocalityRecord, error) {
	columns := CSVColumns()

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read header")
	}
	for i, c := range columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), c) {
			return nil, serrors.With(serrors.ErrBadRequest, "column %d must be %q, got %q", i+1, c, header[i])
		}
	}

	var out []storage.LocalityRecord
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "record %d", n)
		}

		key := timezone.Key(row[0])
		if key == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "record %d: empty location", n)
		}
		tz, ok := timezone.Lookup(row[5])
		if !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "record %d: unknown timezone %q", n, row[5])
		}

		out = append(out, storage.LocalityRecord{
			SearchKey: key,
			Locality: timezone.Locality{
				City:     strings.TrimSpace(row[1]),
				State:    strings.TrimSpace(row[2]),
				Zip:      strings.TrimSpace(row[3]),
				Country:  strings.TrimSpace(row[4]),
				Timezone: tz,
			},
			Source: storage.SourceImport,
		})
	}

	return out, nil
}

// Import stores records in batches within a single transaction. Existing
// entries with the same search key are replaced.
func Import(ctx context.Context, st storage.Storage, records []storage.LocalityRecord, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var total int64
	if err := st.WithTx(ctx, func(tx storage.AllStorage) error {
		for batch := range slices.Chunk(records, batchSize) {
			n, err := tx.StoreLocalities(ctx, batch...)
			if err != nil {
				return fmt.Errorf("could not store localities: %w", err)
			}
			total += n
		}

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not import localities: %w", err)
	}

	return total, nil
}
