package entrypoint

import (
	"fmt"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
)

// OpenCatalog builds the catalog backend selected by cfg. The returned
// database is nil for the in-memory backend; close it when done otherwise.
func OpenCatalog(cfg *config.Config) (catalog.Catalog, *database.Database, error) {
	switch cfg.Catalog.Backend {
	case config.BackendMemory, "":
		return catalog.NewStore(), nil, nil
	case config.BackendSQLite:
		db, err := database.NewDatabase(cfg.Database.DSN, cfg.Database.LogSQL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return books.NewRepository(db.DB), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}
