package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stocked(t *testing.T) *Inventory {
	t.Helper()
	g, err := ComposeGoods("b-1", flowers(StageBloomed, "rose", "rose", "rose"), "", 1, flatValue(10))
	require.NoError(t, err)

	inv := &Inventory{}
	inv.Add(FlowerItem{Flower: &Organism{Name: "tulip", Stage: StageWithered}})
	inv.Add(PlotItem{Plot: NewPlot(true)})
	inv.Add(BouquetItem{Bouquet: g})
	inv.Add(FlowerItem{Flower: &Organism{Name: "daisy", Stage: StageSeed, NRGRestored: 3}})
	return inv
}

func TestInventory_KindDispatch(t *testing.T) {
	inv := stocked(t)

	kinds := []ItemKind{}
	for _, item := range inv.Items() {
		switch it := item.(type) {
		case FlowerItem:
			assert.NotEmpty(t, it.Flower.Name)
		case PlotItem:
			assert.True(t, it.Plot.Container)
		case BouquetItem:
			assert.Equal(t, 3, it.Bouquet.Size())
		}
		kinds = append(kinds, item.Kind())
	}

	assert.Equal(t, []ItemKind{ItemKindFlower, ItemKindPlot, ItemKindBouquet, ItemKindFlower}, kinds)
	assert.Equal(t, 2, inv.Count(ItemKindFlower))
	assert.Len(t, inv.Flowers(), 2)
	assert.Len(t, inv.Bouquets(), 1)
	assert.Len(t, inv.Plots(), 1)
}

func TestInventory_TypedAccess(t *testing.T) {
	inv := stocked(t)

	f, err := inv.FlowerAt(0)
	require.NoError(t, err)
	assert.Equal(t, "tulip", f.Name)

	_, err = inv.FlowerAt(1)
	assert.ErrorIs(t, err, ErrWrongItemKind)

	b, err := inv.BouquetAt(2)
	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID())

	_, err = inv.BouquetAt(9)
	assert.ErrorIs(t, err, ErrStorageIndex)
}

func TestInventory_Remove(t *testing.T) {
	inv := stocked(t)

	item, err := inv.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, ItemKindPlot, item.Kind())
	assert.Equal(t, 3, inv.Len())

	_, err = inv.Remove(-1)
	assert.ErrorIs(t, err, ErrStorageIndex)
}

func TestInventory_RemoveManyIsAtomic(t *testing.T) {
	inv := stocked(t)

	_, err := inv.RemoveMany([]int{0, 7})
	assert.ErrorIs(t, err, ErrStorageIndex)
	_, err = inv.RemoveMany([]int{0, 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 4, inv.Len())

	removed, err := inv.RemoveMany([]int{3, 0})
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Equal(t, "daisy", removed[0].(FlowerItem).Flower.Name)
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, 0, inv.Count(ItemKindFlower))
}

func TestInventory_ItemsAreCopies(t *testing.T) {
	inv := stocked(t)

	inv.Items()[0].(FlowerItem).Flower.Name = "changed"
	inv.Flowers()[0].Name = "changed"

	f, _ := inv.FlowerAt(0)
	assert.Equal(t, "tulip", f.Name)
}

func TestInventory_JSON(t *testing.T) {
	inv := stocked(t)

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var back Inventory
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 4, back.Len())
	b, err := back.BouquetAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, b.BaseValue(), 1e-9)

	assert.ErrorIs(t, json.Unmarshal([]byte(`[{"kind":"tractor"}]`), &back), ErrInvalidInput)
}

func TestInventory_EmptyHasOneShape(t *testing.T) {
	var fresh Inventory
	assert.Equal(t, fresh, fresh.Clone())
	assert.Nil(t, fresh.Items())

	data, err := json.Marshal(fresh)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var decoded Inventory
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fresh.Clone(), decoded)

	drained := stocked(t)
	_, err = drained.RemoveMany([]int{0, 1})
	require.NoError(t, err)
	_, err = drained.Remove(1)
	require.NoError(t, err)
	_, err = drained.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, decoded, *drained)
}

func TestGardenState_CloneIsDeep(t *testing.T) {
	s := NewGardenState(2, 10, 5)
	require.NoError(t, s.Plots[0].Plant(&Organism{Name: "tulip", Stage: StageSeed, Durability: 10}))
	s.Storage.Add(FlowerItem{Flower: &Organism{Name: "rose", Stage: StageBloomed}})
	s.Auction.Applied = []string{"trio"}
	s.Recipes["x"] = Recipe{Signature: "x", TimesComposed: 1}

	c := s.Clone()
	c.Plots[0].Organism.Durability = 1
	c.Plots = append(c.Plots, NewPlot(true))
	c.Storage.Add(FlowerItem{Flower: &Organism{Name: "lily"}})
	c.Auction.Applied[0] = "changed"
	c.Recipes["x"] = Recipe{Signature: "x", TimesComposed: 9}

	assert.Equal(t, 1, s.Day)
	assert.InDelta(t, 10.0, s.Plots[0].Organism.Durability, 1e-9)
	assert.Len(t, s.Plots, 2)
	assert.Equal(t, 1, s.Storage.Len())
	assert.Equal(t, "trio", s.Auction.Applied[0])
	assert.Equal(t, 1, s.Recipes["x"].TimesComposed)
}

func TestGardenState_PlotAt(t *testing.T) {
	s := NewGardenState(2, 0, 0)

	_, err := s.PlotAt(2)
	assert.ErrorIs(t, err, ErrPlotIndex)

	p, err := s.PlotAt(1)
	require.NoError(t, err)
	assert.Same(t, s.Plots[1], p)
}
