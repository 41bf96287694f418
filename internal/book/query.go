package book

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RunQuery filters, sorts and paginates all according to opts. The input
// slice is never modified. opts must already be validated.
func RunQuery(all []Book, opts QueryOptions) PageResult {
	filtered := filterBooks(all, opts.Search)
	sortBooks(filtered, opts.Sort)

	total := len(filtered)
	return PageResult{
		Books:       paginate(filtered, opts.Page, opts.Limit),
		CurrentPage: opts.Page,
		TotalPages:  totalPages(total, opts.Limit),
		TotalBooks:  total,
	}
}

// filterBooks always returns a fresh slice so sorting it cannot reorder the
// caller's collection.
func filterBooks(all []Book, search string) []Book {
	if search == "" {
		return slices.Clone(all)
	}

	term := strings.ToLower(search)
	out := make([]Book, 0, len(all))
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term) {
			out = append(out, b)
		}
	}
	return out
}

func sortBooks(books []Book, order Sort) {
	if order == SortNone {
		return
	}

	// Collators keep internal buffers and are not safe to share.
	c := collate.New(language.English)
	slices.SortStableFunc(books, func(a, b Book) int {
		if order == SortDesc {
			return c.CompareString(b.Title, a.Title)
		}
		return c.CompareString(a.Title, b.Title)
	})
}

func paginate(books []Book, page, limit int) []Book {
	// page <= totalPages keeps (page-1)*limit below len(books).
	if page > totalPages(len(books), limit) {
		return []Book{}
	}
	start := (page - 1) * limit
	end := start + min(limit, len(books)-start)
	return books[start:end]
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total-1)/limit + 1
}
