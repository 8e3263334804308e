package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/http"
)

// =============================================================================
// Catalog backends
// =============================================================================

var _ catalog.Catalog = (*catalog.Store)(nil)
var _ catalog.Catalog = (*books.Repository)(nil)

// =============================================================================
// Health checks
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
