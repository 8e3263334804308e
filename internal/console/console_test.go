package console

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

func runConsole(t *testing.T, store catalog.Catalog, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	err := New(store, strings.NewReader(input), &out).Run()
	require.NoError(t, err)
	return out.String()
}

func addBook(t *testing.T, store catalog.Catalog, isbn, title, author string, year int) {
	t.Helper()
	book := entities.NewBook(isbn, title, author, year)
	require.NoError(t, store.AddBook(&book))
}

func TestConsole_AddBook(t *testing.T) {
	t.Run("adds the book and echoes it", func(t *testing.T) {
		store := catalog.NewStore()

		out := runConsole(t, store, "1", "978-TEST-001", "Bible", "Lenny", "2025", "6")

		assert.Contains(t, out, Banner)
		assert.Contains(t, out, "Added: [978-TEST-001] Bible - Lenny (2025)")
		books, err := store.ListBooks()
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("invalid year defaults to zero", func(t *testing.T) {
		store := catalog.NewStore()

		out := runConsole(t, store, "1", "978-TEST-002", "Les singes", "Le R", "pas_un_nombre", "6")

		assert.Contains(t, out, MsgInvalidYear)
		books, err := store.ListBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, 0, books[0].Year)
	})

	t.Run("year outside 32-bit range defaults to zero", func(t *testing.T) {
		store := catalog.NewStore()

		out := runConsole(t, store, "1", "978-TEST-003", "Far Future", "Nobody", "3000000000", "6")

		assert.Contains(t, out, MsgInvalidYear)
		books, err := store.ListBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, 0, books[0].Year)
	})

	t.Run("negative year is accepted", func(t *testing.T) {
		store := catalog.NewStore()

		out := runConsole(t, store, "1", "1", "Iliad", "Homer", "-750", "6")

		assert.NotContains(t, out, MsgInvalidYear)
		books, err := store.ListBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, -750, books[0].Year)
	})

	t.Run("duplicate ISBN warns but still adds", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-DUP-001", "Livre 1", "Auteur", 2020)

		out := runConsole(t, store, "1", "978-DUP-001", "Livre 2", "Autre auteur", "2021", "6")

		assert.Contains(t, out, MsgSimilarExists)
		books, err := store.ListBooks()
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("duplicate title ignoring case warns", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-A", "Livre Unique", "Auteur", 2020)

		out := runConsole(t, store, "1", "978-B", "LIVRE UNIQUE", "Autre", "2021", "6")

		assert.Equal(t, 1, strings.Count(out, MsgSimilarExists))
	})

	t.Run("warns once per similar book", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-A", "Livre Unique", "Auteur", 2020)
		addBook(t, store, "978-B", "livre unique", "Autre", 2021)

		out := runConsole(t, store, "1", "978-C", "LIVRE UNIQUE", "Troisieme", "2022", "6")

		assert.Equal(t, 2, strings.Count(out, MsgSimilarExists))
		books, err := store.ListBooks()
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})

	t.Run("no warning for a new book", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-A", "One", "Auteur", 2020)

		out := runConsole(t, store, "1", "978-B", "Two", "Auteur", "2021", "6")

		assert.NotContains(t, out, MsgSimilarExists)
	})
}

func TestConsole_ListBooks(t *testing.T) {
	store := catalog.NewStore()
	addBook(t, store, "978-1", "Bible", "Lenny", 2025)
	addBook(t, store, "978-2", "Les singes", "Le R", 2024)
	ok, err := store.BorrowBook("978-1", "Roland")
	require.NoError(t, err)
	require.True(t, ok)

	out := runConsole(t, store, "2", "6")

	assert.Contains(t, out, "[978-1] Bible - Lenny (2025) [BORROWED]\n")
	assert.Contains(t, out, "[978-2] Les singes - Le R (2024)\n")
	assert.Less(t, strings.Index(out, "Bible"), strings.Index(out, "Les singes"))
}

func TestConsole_Borrow(t *testing.T) {
	t.Run("borrows an available book", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-1", "Bible", "Lenny", 2025)

		out := runConsole(t, store, "3", "Roland", "978-1", "6")

		assert.Contains(t, out, MsgBorrowed)
		loan, err := store.GetBorrower("978-1")
		require.NoError(t, err)
		require.NotNil(t, loan)
		assert.Equal(t, "Roland", loan.BorrowerName)
	})

	t.Run("unknown ISBN", func(t *testing.T) {
		store := catalog.NewStore()

		out := runConsole(t, store, "3", "Roland", "nope", "6")

		assert.Contains(t, out, MsgNotFound)
	})

	t.Run("already borrowed", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-1", "Bible", "Lenny", 2025)
		_, err := store.BorrowBook("978-1", "Alice")
		require.NoError(t, err)

		out := runConsole(t, store, "3", "Bob", "978-1", "6")

		assert.Contains(t, out, MsgAlreadyOnLoan)
		loan, err := store.GetBorrower("978-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", loan.BorrowerName)
	})
}

func TestConsole_Return(t *testing.T) {
	t.Run("returns a borrowed book", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-1", "Bible", "Lenny", 2025)
		_, err := store.BorrowBook("978-1", "Alice")
		require.NoError(t, err)

		out := runConsole(t, store, "4", "978-1", "6")

		assert.Contains(t, out, MsgReturned)
		borrowed, err := store.IsBorrowed("978-1")
		require.NoError(t, err)
		assert.False(t, borrowed)
	})

	t.Run("book not on loan", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "978-1", "Bible", "Lenny", 2025)

		out := runConsole(t, store, "4", "978-1", "6")

		assert.Contains(t, out, MsgNotBorrowed)
	})
}

func TestConsole_FindByAuthor(t *testing.T) {
	t.Run("prints matching books only", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "1", "Livre 1", "Lenny", 2020)
		addBook(t, store, "2", "Livre 2", "Roland", 2021)
		_, err := store.BorrowBook("1", "Alice")
		require.NoError(t, err)

		out := runConsole(t, store, "5", "len", "6")

		assert.Contains(t, out, "[1] Livre 1 - Lenny (2020) [BORROWED]")
		assert.NotContains(t, out, "Livre 2")
	})

	t.Run("empty query prints nothing", func(t *testing.T) {
		store := catalog.NewStore()
		addBook(t, store, "1", "Livre 1", "Lenny", 2020)

		out := runConsole(t, store, "5", "", "6")

		assert.NotContains(t, out, "Livre 1")
	})
}

func TestConsole_Exit(t *testing.T) {
	t.Run("option 6 says goodbye", func(t *testing.T) {
		out := runConsole(t, catalog.NewStore(), "6")

		assert.True(t, strings.HasPrefix(out, Banner))
		assert.True(t, strings.HasSuffix(out, MsgBye+"\n"))
	})

	t.Run("unknown option keeps the loop running", func(t *testing.T) {
		out := runConsole(t, catalog.NewStore(), "9", "abc", "6")

		assert.Equal(t, 2, strings.Count(out, MsgUnknownOption))
		assert.Equal(t, 3, strings.Count(out, Menu))
		assert.Contains(t, out, MsgBye)
	})

	t.Run("end of input exits", func(t *testing.T) {
		var out bytes.Buffer
		err := New(catalog.NewStore(), strings.NewReader(""), &out).Run()

		require.NoError(t, err)
		assert.Contains(t, out.String(), MsgBye)
	})

	t.Run("end of input in the middle of a prompt exits", func(t *testing.T) {
		store := catalog.NewStore()
		var out bytes.Buffer
		err := New(store, strings.NewReader("1\n978-1\nBible\n"), &out).Run()

		require.NoError(t, err)
		assert.Contains(t, out.String(), MsgBye)
		books, err := store.ListBooks()
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

type failingCatalog struct {
	catalog.Catalog
}

var errBroken = errors.New("broken")

func (failingCatalog) ListBooks() ([]entities.Book, error) { return nil, errBroken }

func TestConsole_CatalogErrorStopsTheLoop(t *testing.T) {
	var out bytes.Buffer
	err := New(failingCatalog{catalog.NewStore()}, strings.NewReader("2\n6\n"), &out).Run()

	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, out.String(), MsgBye)
}

func TestConsole_LongLines(t *testing.T) {
	t.Run("title longer than the default scanner buffer is added", func(t *testing.T) {
		store := catalog.NewStore()
		title := strings.Repeat("t", 70*1024)

		out := runConsole(t, store, "1", "978-LONG", title, "Author", "2020", "6")

		assert.Contains(t, out, MsgAdded)
		books, err := store.ListBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, title, books[0].Title)
	})

	t.Run("line over the limit is returned as an error", func(t *testing.T) {
		var out bytes.Buffer
		input := "1\n978-HUGE\n" + strings.Repeat("t", maxLineSize+1) + "\n"

		err := New(catalog.NewStore(), strings.NewReader(input), &out).Run()

		require.ErrorIs(t, err, bufio.ErrTooLong)
		assert.Contains(t, out.String(), MsgBye)
		assert.NotContains(t, out.String(), MsgAdded)
	})
}
