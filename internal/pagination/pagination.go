package pagination

import "strconv"

// PageSize is the number of records on every listing page.
const PageSize = 10

// Page addresses one fixed-size slice of an ordered result set.
type Page struct {
	Number   int // 1-based
	Size     int
	NumPages int
	Total    int64
}

// New builds a Page from a raw "page" query value. Non-numeric or
// non-positive values fall back to page 1; values past the end clamp to the
// last page, never an error.
func New(total int64, requested string, size int) Page {
	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}
	if number > numPages {
		number = numPages
	}

	return Page{Number: number, Size: size, NumPages: numPages, Total: total}
}

func (p Page) Limit() int { return p.Size }

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

func (p Page) HasNext() bool { return p.Number < p.NumPages }

func (p Page) HasPrev() bool { return p.Number > 1 }
