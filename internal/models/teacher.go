package models

import "github.com/jmoiron/sqlx/types"

// Teacher represents a tutor profile.
type Teacher struct {
	ID      int64          `db:"id" json:"id"`
	Name    string         `db:"name" json:"name"`
	About   string         `db:"about" json:"about"`
	Rating  float64        `db:"rating" json:"rating"`
	Picture string         `db:"picture" json:"picture"`
	Price   int            `db:"price" json:"price"`
	Free    types.JSONText `db:"free" json:"free"`
	Goals   []Goal         `db:"-" json:"goals"`
}

// HasGoal reports whether the teacher is tagged with the goal name.
func (t Teacher) HasGoal(name string) bool {
	for _, g := range t.Goals {
		if g.Name == name {
			return true
		}
	}
	return false
}

// Availability decodes the teacher's weekly schedule.
func (t Teacher) Availability() (Availability, error) {
	return DecodeAvailability(t.Free)
}

// TeacherSort selects the ordering of the full catalogue page.
type TeacherSort string

const (
	SortRandom     TeacherSort = "1"
	SortRatingDesc TeacherSort = "2"
	SortPriceDesc  TeacherSort = "3"
	SortPriceAsc   TeacherSort = "4"
)

// SortOption is a selectable ordering shown on the catalogue page.
type SortOption struct {
	Code  TeacherSort
	Label string
}

// TeacherSortOptions lists orderings in display order.
var TeacherSortOptions = []SortOption{
	{Code: SortRandom, Label: "In random order"},
	{Code: SortRatingDesc, Label: "Best rated first"},
	{Code: SortPriceDesc, Label: "Most expensive first"},
	{Code: SortPriceAsc, Label: "Cheapest first"},
}

// ParseTeacherSort maps a request parameter onto a known ordering.
// Unknown or empty codes fall back to random order.
func ParseTeacherSort(raw string) TeacherSort {
	switch s := TeacherSort(raw); s {
	case SortRandom, SortRatingDesc, SortPriceDesc, SortPriceAsc:
		return s
	default:
		return SortRandom
	}
}
