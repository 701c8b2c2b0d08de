package catalog

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"region-catalog-go/pkg/model"
)

// Postgres loader. The ingest step maintains two tables:
//
//	regions(id, name, provider, latitude, longitude, aliases)
//	region_services(region_id, service, edition, tier)
//
// A boolean service is one row with NULL edition/tier; each vault
// edition/tier combination is its own row.

type regionRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Provider  string         `db:"provider"`
	Latitude  float64        `db:"latitude"`
	Longitude float64        `db:"longitude"`
	Aliases   pq.StringArray `db:"aliases"`
}

type serviceRow struct {
	RegionID string         `db:"region_id"`
	Service  string         `db:"service"`
	Edition  sql.NullString `db:"edition"`
	Tier     sql.NullString `db:"tier"`
}

// LoadDB hydrates the catalog from Postgres. The database is only touched
// here, at startup; queries run against the in-memory catalog afterwards.
func LoadDB(db *sqlx.DB) (*Catalog, error) {
	var rows []regionRow
	err := db.Select(&rows, `SELECT id, name, provider, latitude, longitude, aliases FROM regions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("regions table is empty")
	}

	var svcRows []serviceRow
	err = db.Select(&svcRows, `SELECT region_id, service, edition, tier FROM region_services ORDER BY region_id, service`)
	if err != nil {
		return nil, fmt.Errorf("load region services: %w", err)
	}

	services := make(map[string]map[string]model.ServiceAvailability, len(rows))
	for _, s := range svcRows {
		byService := services[s.RegionID]
		if byService == nil {
			byService = make(map[string]model.ServiceAvailability)
			services[s.RegionID] = byService
		}
		if !s.Edition.Valid && !s.Tier.Valid {
			byService[s.Service] = model.BooleanAvailability(true)
			continue
		}
		avail := byService[s.Service]
		avail.Tiered = true
		avail.Entries = append(avail.Entries, model.VaultEntry{
			Edition: s.Edition.String,
			Tier:    s.Tier.String,
		})
		byService[s.Service] = avail
	}

	regions := make([]model.Region, 0, len(rows))
	for _, row := range rows {
		regions = append(regions, model.Region{
			ID:        row.ID,
			Name:      row.Name,
			Provider:  model.Provider(row.Provider),
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Aliases:   row.Aliases,
			Services:  services[row.ID],
		})
	}
	return New(regions)
}
