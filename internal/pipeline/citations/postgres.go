package citations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// LoadFromPostgres reads the versioned reference set once at startup. The
// rows become an immutable in-memory catalog; the connection is not used
// again afterwards. An unreadable catalog is fatal: guidance is never
// emitted unverified.
func LoadFromPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	var version string
	if err := db.QueryRowContext(ctx,
		`SELECT version FROM citation_catalog_meta ORDER BY loaded_at DESC LIMIT 1`,
	).Scan(&version); err != nil {
		return nil, fmt.Errorf("read catalog version: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT source_id, chunk_id, support_text, tags FROM citations ORDER BY source_id, chunk_id`)
	if err != nil {
		return nil, fmt.Errorf("read citations: %w", err)
	}
	defer rows.Close()

	var entries []Citation
	for rows.Next() {
		var c Citation
		if err := rows.Scan(&c.SourceID, &c.ChunkID, &c.SupportText, pq.Array(&c.Tags)); err != nil {
			return nil, fmt.Errorf("scan citation: %w", err)
		}
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate citations: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("citation catalog %q is empty", version)
	}

	return NewCatalog(version, entries), nil
}
