package paginator

import (
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// PageSize amount of trips returned on each page
const PageSize = 5

// NextPage returns the page that starts at cursor, the cursor of the following page and whether
// the returned page is the last one. The last page can have less than PageSize trips.
// Once cursor reaches the end of the dataset the page is empty and exhausted is true.
func NextPage(data *dataset.Dataset, cursor int) ([]trip.TripRecord, int, bool) {
	if cursor < 0 {
		cursor = 0
	}

	total := data.Len()
	if cursor >= total {
		return []trip.TripRecord{}, total, true
	}

	end := cursor + PageSize
	if end > total {
		end = total
	}

	// full slice expression: appending to a page must not overwrite the following trips
	return data.Records[cursor:end:end], end, end == total
}

// Paginator keeps the cursor between calls to NextPage
type Paginator struct {
	data   *dataset.Dataset
	cursor int
	done   bool
}

func NewPaginator(data *dataset.Dataset) *Paginator {
	return &Paginator{data: data}
}

// Next returns the following page. Once the last page is returned Exhausted is true.
func (p *Paginator) Next() []trip.TripRecord {
	page, cursor, exhausted := NextPage(p.data, p.cursor)
	p.cursor = cursor
	p.done = exhausted
	return page
}

// Exhausted returns true once the last page was returned
func (p *Paginator) Exhausted() bool {
	return p.done
}
