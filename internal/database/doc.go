// Package database provides the SQLite data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── books/           # Book and loan operations (catalog.Catalog)
//
// The default DSN is ":memory:", so nothing outlives the process. The
// connection pool is pinned to a single connection to keep that database
// alive and to serialise writers.
//
// # Usage
//
//	db, err := database.NewDatabase(database.MemoryDSN, false)
//	repo := books.NewRepository(db.DB)
//	ok, err := repo.BorrowBook("978-1", "Roland")
package database
