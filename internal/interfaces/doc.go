// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - catalog.Catalog: books and loans (internal/catalog/catalog.go)
//     implemented by catalog.Store and database/books.Repository
//
// ## Health Interfaces
//
//   - http.Pinger: connectivity checks for /health (internal/http/health.go)
//
// # Adding a New Catalog Backend
//
//  1. Implement catalog.Catalog, reusing catalog.TitleMatches and
//     catalog.AuthorMatches so case folding stays identical
//
//  2. Run the shared behavioural suite against it:
//
//     suite.Run(t, &catalogtest.Suite{NewCatalog: func(t *testing.T) catalog.Catalog { ... }})
//
//  3. Select it in entrypoint.OpenCatalog and add a config.Backend value
//
//  4. Add compile-time check:
//
//     var _ catalog.Catalog = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
