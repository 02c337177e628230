package postgres

import (
	"database/sql"
	"time"
	"tracker/pkg/storage"
	"tracker/pkg/timezone"
)

type PgLocality struct {
	SearchKey string `db:"search_key"`
	City      string `db:"city"`
	State     string `db:"state"`
	Zip       string `db:"zip"`
	Country   string `db:"country"`
	Timezone  string `db:"timezone"`
	Source    string `db:"source"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLocality) ToDomain() storage.LocalityRecord {
	return storage.LocalityRecord{
		SearchKey: p.SearchKey,
		Locality: timezone.Locality{
			City:     p.City,
			State:    p.State,
			Zip:      p.Zip,
			Country:  p.Country,
			Timezone: p.Timezone,
		},
		Source:    storage.Source(p.Source),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgLocality) FromDomain(record storage.LocalityRecord) {
	source := record.Source
	if source == "" {
		source = storage.SourceImport
	}

	*p = PgLocality{
		SearchKey: timezone.Key(record.SearchKey),
		City:      record.Locality.City,
		State:     record.Locality.State,
		Zip:       record.Locality.Zip,
		Country:   record.Locality.Country,
		Timezone:  record.Locality.Timezone,
		Source:    string(source),
		CreatedAt: record.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  record.UpdatedAt,
			Valid: !record.UpdatedAt.IsZero(),
		},
	}
}

// domainLocalitiesToPg converts records, keeping the last record for each
// search key so a single upsert never touches a row twice.
func domainLocalitiesToPg(records []storage.LocalityRecord) []PgLocality {
	index := make(map[string]int, len(records))
	out := make([]PgLocality, 0, len(records))
	for _, r := range records {
		var row PgLocality
		row.FromDomain(r)
		if row.SearchKey == "" {
			continue
		}
		if i, ok := index[row.SearchKey]; ok {
			out[i] = row

			continue
		}
		index[row.SearchKey] = len(out)
		out = append(out, row)
	}

	return out
}
