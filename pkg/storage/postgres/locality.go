package postgres

import (
	"context"
	"fmt"
	"tracker/pkg/storage"
	"tracker/pkg/timezone"

	"github.com/doug-martin/goqu/v9"
)

const (
	localitiesTable = "localities"
)

// LocalitiesByKeys fetches entries whose search key is one of keys. Keys are
// canonicalized with timezone.Key before querying.
func (p *PgSQL) LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]storage.LocalityRecord, error) {
	canonical := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = timezone.Key(k); k != "" {
			canonical = append(canonical, k)
		}
	}
	if len(canonical) == 0 {
		return map[string]storage.LocalityRecord{}, nil
	}

	var rows []PgLocality
	if err := p.Builder.From(localitiesTable).
		Where(goqu.I("search_key").In(canonical)).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get localities from pg: %w", err)
	}

	out := make(map[string]storage.LocalityRecord, len(rows))
	for _, row := range rows {
		out[row.SearchKey] = row.ToDomain()
	}

	return out, nil
}

// StoreLocalities upserts entries by search key. Rows for an existing key
// are overwritten and get updated_at set.
func (p *PgSQL) StoreLocalities(ctx context.Context, records ...storage.LocalityRecord) (int64, error) {
	rows := domainLocalitiesToPg(records)
	if len(rows) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Insert(localitiesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("search_key", goqu.Record{
			"city":       goqu.I("excluded.city"),
			"state":      goqu.I("excluded.state"),
			"zip":        goqu.I("excluded.zip"),
			"country":    goqu.I("excluded.country"),
			"timezone":   goqu.I("excluded.timezone"),
			"source":     goqu.I("excluded.source"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store localities into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

// DeleteLocalitiesBySource removes every entry that came from source.
func (p *PgSQL) DeleteLocalitiesBySource(ctx context.Context, source storage.Source) (int64, error) {
	res, err := p.Builder.Delete(localitiesTable).
		Where(goqu.I("source").Eq(string(source))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete localities in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
