package paging

import "shareit/internal/pkg/errs"

var ErrInvalidPage = errs.New("invalid page bounds")

// Page translates an (offset, size) pair into block-aligned LIMIT/OFFSET
// values: the offset is rounded down to the start of the page it falls in,
// so from=3,size=2 addresses the same page as from=2,size=2. This mirrors
// how the wire protocol has always behaved and callers depend on it.
type Page struct {
	from int
	size int
}

func New(from, size int) (Page, error) {
	if from < 0 || size < 1 {
		return Page{}, ErrInvalidPage
	}
	return Page{from: from, size: size}, nil
}

func (p Page) Limit() int {
	return p.size
}

func (p Page) Offset() int {
	return (p.from / p.size) * p.size
}

func (p Page) Index() int {
	return p.from / p.size
}
