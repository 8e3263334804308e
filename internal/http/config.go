package http

import "github.com/mrlokans/library/internal/catalog"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog catalog.Catalog

	// Database is checked by /health; nil for the in-memory backend
	Database Pinger

	// Reject write requests
	ReadOnly bool

	// Application info
	Version string
}
