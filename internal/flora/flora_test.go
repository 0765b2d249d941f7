package flora

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

const sampleCSV = `name,seed_cost,difficulty,durability,nrg_restored,woody,seed,seedling,bloomed,matured,withered,mutated
# comment lines are skipped
Tulip,4,1,80,5,false,0,2,10,14,2,50
rose,10,2,90,7,false,0,4,20,28,5,100
camellia,14,3,120,5,true,0,5,26,36,6,130
`

func sampleTable(t *testing.T) *Table {
	t.Helper()
	flowers, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	table, err := NewTable(flowers)
	require.NoError(t, err)
	return table
}

func TestParseCSV(t *testing.T) {
	table := sampleTable(t)
	ctx := context.Background()

	tulip, err := table.Lookup(ctx, "  TULIP ")
	require.NoError(t, err)
	assert.Equal(t, "tulip", tulip.Name)
	assert.InDelta(t, 4.0, tulip.SeedCost, 1e-9)
	assert.Equal(t, 1, tulip.Difficulty)
	assert.InDelta(t, 80.0, tulip.Durability, 1e-9)
	assert.Equal(t, 5, tulip.NRGRestored)
	assert.False(t, tulip.Woody)
	assert.InDelta(t, 14.0, tulip.StageValue(domain.StageMatured), 1e-9)

	camellia, err := table.Lookup(ctx, "camellia")
	require.NoError(t, err)
	assert.True(t, camellia.Woody)

	names, err := table.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"camellia", "rose", "tulip"}, names)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"wrong header", "name,cost\nrose,1\n"},
		{"bad number", strings.Replace(sampleCSV, "rose,10", "rose,ten", 1)},
		{"negative durability", strings.Replace(sampleCSV, "rose,10,2,90", "rose,10,2,-90", 1)},
		{"bad bool", strings.Replace(sampleCSV, "true", "maybe", 1)},
		{"short row", sampleCSV + "daisy,2,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestNewTable_RejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Flower{
		{Name: "Rose", Durability: 10},
		{Name: "rose", Durability: 10},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewTable([]Flower{{Name: "rose"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookup_NotFoundSuggests(t *testing.T) {
	table := sampleTable(t)

	_, err := table.Lookup(context.Background(), "tulpi")

	require.ErrorIs(t, err, ErrFlowerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), `did you mean "tulip"`)

	_, err = table.Lookup(context.Background(), "chrysanthemum")
	require.ErrorIs(t, err, ErrFlowerNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	known := []string{"daisy", "lily", "rose", "tulip", "wild rose"}

	tests := []struct {
		in       string
		expected string
		ok       bool
	}{
		{"rsoe", "", false}, // two edits on a short name
		{"roze", "rose", true},
		{"dasiy", "daisy", true},
		{"wild  ROSES", "wild rose", true},
		{"lilly", "lily", true},
		{"", "", false},
		{"orchid", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(known, tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewOrganism(t *testing.T) {
	table := sampleTable(t)

	o, err := NewOrganism(context.Background(), table, "rose")

	require.NoError(t, err)
	assert.Equal(t, domain.StageSeed, o.Stage)
	assert.Zero(t, o.Days)
	assert.InDelta(t, 90.0, o.Durability, 1e-9)
	assert.Equal(t, 7, o.NRGRestored)
	assert.Equal(t, 2, o.Difficulty)

	_, err = NewOrganism(context.Background(), table, "weed")
	assert.ErrorIs(t, err, ErrFlowerNotFound)
}

func TestValueFunc(t *testing.T) {
	value := ValueFunc(context.Background(), sampleTable(t))

	v, err := value("rose", domain.StageBloomed)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, v, 1e-9)

	_, err = value("weed", domain.StageBloomed)
	assert.ErrorIs(t, err, ErrFlowerNotFound)
}

func TestLoadTable_ShippedCatalog(t *testing.T) {
	_, file, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(file), "..", "..", "configs", "flowers.csv")

	table, err := LoadTable(path)
	require.NoError(t, err)

	for _, f := range table.Flowers() {
		assert.Zero(t, f.StageValue(domain.StageSeed), f.Name)
		assert.Greater(t, f.StageValue(domain.StageMutated), f.StageValue(domain.StageMatured), f.Name)
		assert.GreaterOrEqual(t, f.StageValue(domain.StageMatured), f.StageValue(domain.StageBloomed), f.Name)
	}
	_, err = table.Lookup(context.Background(), "wild rose")
	assert.NoError(t, err)
}

// countingRegistry counts calls through to a table
type countingRegistry struct {
	*Table
	lookups int
	names   int
	fail    error
}

func (c *countingRegistry) Lookup(ctx context.Context, name string) (Flower, error) {
	c.lookups++
	if c.fail != nil {
		return Flower{}, c.fail
	}
	return c.Table.Lookup(ctx, name)
}

func (c *countingRegistry) Names(ctx context.Context) ([]string, error) {
	c.names++
	return c.Table.Names(ctx)
}

func TestCachedRegistry(t *testing.T) {
	inner := &countingRegistry{Table: sampleTable(t)}
	cache := NewCachedRegistry(inner, 8, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f, err := cache.Lookup(ctx, "Rose")
		require.NoError(t, err)
		assert.Equal(t, "rose", f.Name)
	}
	assert.Equal(t, 1, inner.lookups)

	_, err := cache.Lookup(ctx, "rosa")
	require.ErrorIs(t, err, ErrFlowerNotFound)
	assert.Contains(t, err.Error(), `did you mean "rose"`)
	_, _ = cache.Lookup(ctx, "rosa")
	assert.Equal(t, 3, inner.lookups, "misses are not cached")
	assert.Equal(t, 1, inner.names)

	cache.Purge()
	_, _ = cache.Lookup(ctx, "rose")
	assert.Equal(t, 4, inner.lookups)
}

func TestCachedRegistry_PassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection refused")
	inner := &countingRegistry{Table: sampleTable(t), fail: boom}

	_, err := NewCachedRegistry(inner, 8, time.Minute).Lookup(context.Background(), "rose")

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, inner.names)
}
