package domain

import (
	"encoding/json"
	"fmt"
)

// ItemKind tags the variant held in an inventory entry
type ItemKind string

const (
	ItemKindFlower  ItemKind = "flower"
	ItemKindPlot    ItemKind = "plot"
	ItemKindBouquet ItemKind = "bouquet"
)

// Item is a storage entry. The set of variants is closed: FlowerItem, PlotItem and
// BouquetItem.
type Item interface {
	Kind() ItemKind
	clone() Item
}

// FlowerItem is a harvested or bought flower
type FlowerItem struct{ Flower *Organism }

// PlotItem is an unplaced plot or container
type PlotItem struct{ Plot *Plot }

// BouquetItem is a composed bouquet
type BouquetItem struct{ Bouquet *ComposedGoods }

func (FlowerItem) Kind() ItemKind  { return ItemKindFlower }
func (PlotItem) Kind() ItemKind    { return ItemKindPlot }
func (BouquetItem) Kind() ItemKind { return ItemKindBouquet }

func (i FlowerItem) clone() Item  { return FlowerItem{Flower: i.Flower.Clone()} }
func (i PlotItem) clone() Item    { return PlotItem{Plot: i.Plot.Clone()} }
func (i BouquetItem) clone() Item { return i } // bouquets are immutable

// Inventory is the player's storage
type Inventory struct {
	items []Item
}

// Len returns the number of entries
func (inv *Inventory) Len() int { return len(inv.items) }

// Add appends an entry
func (inv *Inventory) Add(item Item) {
	inv.items = append(inv.items, item)
}

// Get returns the entry at index without removing it
func (inv *Inventory) Get(index int) (Item, error) {
	if index < 0 || index >= len(inv.items) {
		return nil, fmt.Errorf("%w: %d", ErrStorageIndex, index)
	}
	return inv.items[index], nil
}

// Remove takes the entry at index out of storage
func (inv *Inventory) Remove(index int) (Item, error) {
	item, err := inv.Get(index)
	if err != nil {
		return nil, err
	}
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	if len(inv.items) == 0 {
		inv.items = nil
	}
	return item, nil
}

// RemoveMany takes several entries out at once. Indexes refer to the current order;
// on error nothing is removed.
func (inv *Inventory) RemoveMany(indexes []int) ([]Item, error) {
	seen := make(map[int]bool, len(indexes))
	out := make([]Item, 0, len(indexes))
	for _, idx := range indexes {
		item, err := inv.Get(idx)
		if err != nil {
			return nil, err
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d given twice", ErrInvalidInput, idx)
		}
		seen[idx] = true
		out = append(out, item)
	}
	var kept []Item
	for i, item := range inv.items {
		if !seen[i] {
			kept = append(kept, item)
		}
	}
	inv.items = kept
	return out, nil
}

// Items returns a snapshot of every entry. An empty inventory yields nil, the same
// shape a decoded empty save has.
func (inv *Inventory) Items() []Item {
	if len(inv.items) == 0 {
		return nil
	}
	out := make([]Item, len(inv.items))
	for i, item := range inv.items {
		out[i] = item.clone()
	}
	return out
}

// Count returns the number of entries of a kind
func (inv *Inventory) Count(kind ItemKind) int {
	n := 0
	for _, item := range inv.items {
		if item.Kind() == kind {
			n++
		}
	}
	return n
}

// FlowerAt returns the stored flower at index
func (inv *Inventory) FlowerAt(index int) (*Organism, error) {
	item, err := inv.Get(index)
	if err != nil {
		return nil, err
	}
	f, ok := item.(FlowerItem)
	if !ok {
		return nil, fmt.Errorf("%w: entry %d is a %s", ErrWrongItemKind, index, item.Kind())
	}
	return f.Flower, nil
}

// BouquetAt returns the stored bouquet at index
func (inv *Inventory) BouquetAt(index int) (*ComposedGoods, error) {
	item, err := inv.Get(index)
	if err != nil {
		return nil, err
	}
	b, ok := item.(BouquetItem)
	if !ok {
		return nil, fmt.Errorf("%w: entry %d is a %s", ErrWrongItemKind, index, item.Kind())
	}
	return b.Bouquet, nil
}

// Flowers returns copies of the stored flowers in storage order
func (inv *Inventory) Flowers() []*Organism {
	var out []*Organism
	for _, item := range inv.items {
		if f, ok := item.(FlowerItem); ok {
			out = append(out, f.Flower.Clone())
		}
	}
	return out
}

// Bouquets returns the stored bouquets in storage order
func (inv *Inventory) Bouquets() []*ComposedGoods {
	var out []*ComposedGoods
	for _, item := range inv.items {
		if b, ok := item.(BouquetItem); ok {
			out = append(out, b.Bouquet)
		}
	}
	return out
}

// Plots returns copies of the stored plots in storage order
func (inv *Inventory) Plots() []*Plot {
	var out []*Plot
	for _, item := range inv.items {
		if p, ok := item.(PlotItem); ok {
			out = append(out, p.Plot.Clone())
		}
	}
	return out
}

// Clone returns a deep copy
func (inv *Inventory) Clone() Inventory {
	return Inventory{items: inv.Items()}
}

type itemJSON struct {
	Kind    ItemKind       `json:"kind"`
	Flower  *Organism      `json:"flower,omitempty"`
	Plot    *Plot          `json:"plot,omitempty"`
	Bouquet *ComposedGoods `json:"bouquet,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (inv Inventory) MarshalJSON() ([]byte, error) {
	raw := make([]itemJSON, 0, len(inv.items))
	for _, item := range inv.items {
		switch it := item.(type) {
		case FlowerItem:
			raw = append(raw, itemJSON{Kind: ItemKindFlower, Flower: it.Flower})
		case PlotItem:
			raw = append(raw, itemJSON{Kind: ItemKindPlot, Plot: it.Plot})
		case BouquetItem:
			raw = append(raw, itemJSON{Kind: ItemKindBouquet, Bouquet: it.Bouquet})
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var raw []itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var items []Item
	for i, r := range raw {
		switch {
		case r.Kind == ItemKindFlower && r.Flower != nil:
			items = append(items, FlowerItem{Flower: r.Flower})
		case r.Kind == ItemKindPlot && r.Plot != nil:
			items = append(items, PlotItem{Plot: r.Plot})
		case r.Kind == ItemKindBouquet && r.Bouquet != nil:
			items = append(items, BouquetItem{Bouquet: r.Bouquet})
		default:
			return fmt.Errorf("%w: storage entry %d has kind %q", ErrInvalidInput, i, r.Kind)
		}
	}
	inv.items = items
	return nil
}
