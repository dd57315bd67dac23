package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTeacherSort(t *testing.T) {
	assert.Equal(t, SortRatingDesc, ParseTeacherSort("2"))
	assert.Equal(t, SortPriceDesc, ParseTeacherSort("3"))
	assert.Equal(t, SortPriceAsc, ParseTeacherSort("4"))
	assert.Equal(t, SortRandom, ParseTeacherSort("1"))
	assert.Equal(t, SortRandom, ParseTeacherSort(""))
	assert.Equal(t, SortRandom, ParseTeacherSort("9"))
	assert.Len(t, TeacherSortOptions, 4)
}

func TestTeacherHasGoal(t *testing.T) {
	teacher := Teacher{Goals: []Goal{{ID: 1, Name: "travel"}, {ID: 3, Name: "work"}}}
	assert.True(t, teacher.HasGoal("work"))
	assert.False(t, teacher.HasGoal("study"))
}

func TestLookups(t *testing.T) {
	day, ok := LookupWeekday("fri")
	assert.True(t, ok)
	assert.Equal(t, "Friday", day.Label)
	_, ok = LookupWeekday("friday")
	assert.False(t, ok)

	rt, ok := LookupRequestTime("5-7")
	assert.True(t, ok)
	assert.Equal(t, "5-7 hours a week", rt.Label)
	_, ok = LookupRequestTime("100")
	assert.False(t, ok)
}
