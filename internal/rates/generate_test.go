package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dixis/shipzone/internal/zone"
	"dixis/shipzone/pkg/errorutil"
)

func TestGenerateDefaultTable(t *testing.T) {
	entries, err := Generate(DefaultTable())
	require.NoError(t, err)

	// 默认重量段起点均低于各方式上限
	assert.Len(t, entries, 7*3*3)

	first := entries[0].Record()
	assert.Equal(t, []string{"1", "0.00", "2.00", "HOME", "3.50", "0.90"}, first)

	last := entries[len(entries)-1].Record()
	assert.Equal(t, []string{"7", "5.01", "10.00", "LOCKER", "4.00", "0.00"}, last)
}

func TestGenerateOrder(t *testing.T) {
	entries, err := Generate(DefaultTable())
	require.NoError(t, err)

	i := 0
	for _, z := range zone.All {
		for _, m := range Methods {
			for _, b := range defaultBrackets() {
				e := entries[i]
				assert.Equal(t, z, e.Zone)
				assert.Equal(t, m, e.Method)
				assert.True(t, b.FromKg.Equal(e.Bracket.FromKg), "row %d", i)
				i++
			}
		}
	}
}

func TestGenerateLockerHasNoExtraRate(t *testing.T) {
	entries, err := Generate(DefaultTable())
	require.NoError(t, err)

	lockers := 0
	for _, e := range entries {
		if e.Method == Locker {
			lockers++
			assert.Equal(t, "0.00", e.Record()[5])
		}
	}
	assert.Equal(t, 21, lockers)
}

func TestGenerateSkipsBracketsAboveLimit(t *testing.T) {
	table := DefaultTable()
	table.Limits[Locker] = decimal.NewFromInt(5)
	table.Limits[Pickup] = decimal.RequireFromString("2.01")

	entries, err := Generate(table)
	require.NoError(t, err)

	counts := map[Method]int{}
	for _, e := range entries {
		counts[e.Method]++
		limit, capped := table.Limits[e.Method]
		if capped {
			assert.False(t, e.Bracket.FromKg.GreaterThan(limit))
		}
	}

	assert.Equal(t, 7*3, counts[Home])
	assert.Equal(t, 7*2, counts[Pickup])
	assert.Equal(t, 7*2, counts[Locker])
}

func TestGenerateSkippedBracketNeedsNoBaseRate(t *testing.T) {
	table := DefaultTable()
	table.Limits[Locker] = decimal.NewFromInt(5)
	delete(table.Base, Key{Zone: zone.Remote, Method: Locker, Bracket: 2})

	_, err := Generate(table)
	assert.NoError(t, err)
}

func TestGenerateMissingBaseRate(t *testing.T) {
	table := DefaultTable()
	delete(table.Base, Key{Zone: zone.Islands, Method: Pickup, Bracket: 1})

	entries, err := Generate(table)
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, errorutil.IsKind(err, errorutil.KindConfig))
	assert.Contains(t, err.Error(), "zone 4 method PICKUP")
}

func TestGenerateMissingExtraRate(t *testing.T) {
	table := DefaultTable()
	delete(table.Extra, ZoneMethod{Zone: zone.Athens, Method: Home})

	_, err := Generate(table)
	require.Error(t, err)
	assert.True(t, errorutil.IsKind(err, errorutil.KindConfig))
}

func TestGenerateRejectsLockerExtraRate(t *testing.T) {
	table := DefaultTable()
	table.Extra[ZoneMethod{Zone: zone.Remote, Method: Locker}] = decimal.RequireFromString("0.50")

	_, err := Generate(table)
	require.Error(t, err)
	assert.True(t, errorutil.IsKind(err, errorutil.KindConfig))
}

func TestGenerateNoBrackets(t *testing.T) {
	table := DefaultTable()
	table.Brackets = nil

	_, err := Generate(table)
	assert.True(t, errorutil.IsKind(err, errorutil.KindConfig))
}

func TestRecords(t *testing.T) {
	entries, err := Generate(DefaultTable())
	require.NoError(t, err)

	records := Records(entries)
	require.Len(t, records, len(entries)+1)
	assert.Equal(t, Header, records[0])
	for _, r := range records[1:] {
		assert.Len(t, r, len(Header))
	}
}
