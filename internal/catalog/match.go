package catalog

import (
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

// TitleMatches reports whether the book's title equals title, ignoring case.
func TitleMatches(book entities.Book, title string) bool {
	return strings.EqualFold(book.Title, title)
}

// AuthorMatches reports whether the book's author contains query, ignoring
// case. An empty query never matches.
func AuthorMatches(book entities.Book, query string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(book.Author), strings.ToLower(query))
}

// IsSimilar reports whether two books share an ISBN or a title (ignoring case).
// The console and the HTTP API use it to warn about likely duplicates.
func IsSimilar(a, b entities.Book) bool {
	return a.ISBN == b.ISBN || TitleMatches(a, b.Title)
}
