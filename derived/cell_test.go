package derived_test

import (
	"testing"

	"github.com/on-the-ground/roster_ive_go/derived"
	"github.com/on-the-ground/roster_ive_go/roster"

	"github.com/stretchr/testify/assert"
)

func TestCell_RecomputesOnlyOnChange(t *testing.T) {
	count := 0
	cell := derived.NewCell(func(r roster.Roster) int {
		count++
		return roster.CountActive(r)
	})

	seed, _ := roster.Seed()

	assert.Equal(t, 1, cell.Value(seed))
	assert.Equal(t, 1, cell.Value(seed)) // cached
	assert.Equal(t, 1, count)

	toggled := seed.Toggle(2)
	assert.Equal(t, 2, cell.Value(toggled))
	assert.Equal(t, 2, count)

	assert.Equal(t, 2, cell.Value(toggled))
	assert.Equal(t, 2, count)
}

func TestCell_ContentEqualValuesShareResult(t *testing.T) {
	count := 0
	cell := derived.NewCell(func(r roster.Roster) int {
		count++
		return roster.CountActive(r)
	})

	seed, _ := roster.Seed()
	sameContent := roster.New(seed.Users()...)

	cell.Value(seed)
	cell.Value(sameContent)
	assert.Equal(t, 1, count)
}

func TestCell_SingleSlot(t *testing.T) {
	count := 0
	cell := derived.NewCell(func(r roster.Roster) int {
		count++
		return roster.CountActive(r)
	})

	seed, _ := roster.Seed()
	toggled := seed.Toggle(2)

	cell.Value(seed)
	cell.Value(toggled)
	cell.Value(seed) // previous computation used toggled, so this recomputes
	assert.Equal(t, 3, count)
}

func TestCell_DistinguishesNulShiftedFields(t *testing.T) {
	cell := derived.NewCell(func(r roster.Roster) string {
		return r.Users()[0].Username
	})

	a := roster.New(roster.User{ID: 1, Username: "a\x00b", Email: "c"})
	b := roster.New(roster.User{ID: 1, Username: "a", Email: "b\x00c"})

	assert.Equal(t, "a\x00b", cell.Value(a))
	assert.Equal(t, "a", cell.Value(b))
}

func TestCell_Invalidate(t *testing.T) {
	count := 0
	cell := derived.NewCell(func(r roster.Roster) int {
		count++
		return roster.CountActive(r)
	})

	seed, _ := roster.Seed()

	cell.Value(seed)
	cell.Invalidate()
	cell.Value(seed)
	assert.Equal(t, 2, count)
}

func TestNewCell_NilDerivationPanics(t *testing.T) {
	assert.Panics(t, func() {
		derived.NewCell[roster.Roster, int](nil)
	})
}
