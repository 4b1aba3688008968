package pager

import "bikeshare/domain/entities/trip"

const DefaultPageSize = 5

// Pager walks the rows of a table by position, pageSize rows at a time
type Pager struct {
	trips    []*trip.TripData
	pageSize int
	cursor   int
}

func NewPager(trips []*trip.TripData, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		trips:    trips,
		pageSize: pageSize,
	}
}

// Next returns the next page and advances the cursor. Once the rows are exhausted an empty page is returned
func (p *Pager) Next() []*trip.TripData {
	start := min(p.cursor, len(p.trips))
	end := min(p.cursor+p.pageSize, len(p.trips))
	p.cursor += p.pageSize
	return p.trips[start:end]
}

// Done returns true if there are no more rows to show
func (p *Pager) Done() bool {
	return p.cursor >= len(p.trips)
}

func (p *Pager) GetPageSize() int {
	return p.pageSize
}
