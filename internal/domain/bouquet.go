package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Bouquet size bounds
const (
	MinBouquetSize = 3
	MaxBouquetSize = 12
)

// ValueFunc resolves the monetary value of a flower in a given stage
type ValueFunc func(name string, stage Stage) (float64, error)

// ComposedGoods is a bouquet: an immutable ordered collection of harvested flowers.
// The base value is fixed when the bouquet is composed.
type ComposedGoods struct {
	id         string
	flowers    []Organism
	signature  string
	label      string
	baseValue  float64
	createdDay int
}

// ComposeGoods validates the flowers and builds a bouquet valued with value.
func ComposeGoods(id string, flowers []*Organism, label string, day int, value ValueFunc) (*ComposedGoods, error) {
	if len(flowers) < MinBouquetSize || len(flowers) > MaxBouquetSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBouquetSize, len(flowers))
	}

	held := make([]Organism, 0, len(flowers))
	total := 0.0
	for _, f := range flowers {
		if f == nil || !f.Stage.Composable() {
			name := "<nil>"
			if f != nil {
				name = f.Label()
			}
			return nil, fmt.Errorf("%w: %s", ErrIneligibleStage, name)
		}
		v, err := value(f.Name, f.Stage)
		if err != nil {
			return nil, err
		}
		total += v
		held = append(held, *f)
	}

	return &ComposedGoods{
		id:         id,
		flowers:    held,
		signature:  signatureOf(held),
		label:      label,
		baseValue:  total,
		createdDay: day,
	}, nil
}

func signatureOf(flowers []Organism) string {
	labels := make([]string, len(flowers))
	for i := range flowers {
		labels[i] = flowers[i].Label()
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}

// ID returns the bouquet identifier
func (g *ComposedGoods) ID() string { return g.id }

// Signature returns the sorted, comma-joined stage-qualified name list
func (g *ComposedGoods) Signature() string { return g.signature }

// Label returns the custom name, if any
func (g *ComposedGoods) Label() string { return g.label }

// BaseValue returns the value fixed at composition
func (g *ComposedGoods) BaseValue() float64 { return g.baseValue }

// CreatedDay returns the day the bouquet was composed
func (g *ComposedGoods) CreatedDay() int { return g.createdDay }

// Size returns the number of flowers
func (g *ComposedGoods) Size() int { return len(g.flowers) }

// Flowers returns a copy of the flowers in composition order
func (g *ComposedGoods) Flowers() []Organism {
	out := make([]Organism, len(g.flowers))
	copy(out, g.flowers)
	return out
}

// WithLabel returns a copy carrying a different label
func (g *ComposedGoods) WithLabel(label string) *ComposedGoods {
	c := *g
	c.flowers = g.Flowers()
	c.label = label
	return &c
}

type composedGoodsJSON struct {
	ID         string     `json:"id"`
	Flowers    []Organism `json:"flowers"`
	Label      string     `json:"label,omitempty"`
	BaseValue  float64    `json:"base_value"`
	CreatedDay int        `json:"created_day"`
}

// MarshalJSON implements json.Marshaler
func (g *ComposedGoods) MarshalJSON() ([]byte, error) {
	return json.Marshal(composedGoodsJSON{
		ID:         g.id,
		Flowers:    g.flowers,
		Label:      g.label,
		BaseValue:  g.baseValue,
		CreatedDay: g.createdDay,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The stored base value is kept as is.
func (g *ComposedGoods) UnmarshalJSON(data []byte) error {
	var raw composedGoodsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Flowers) < MinBouquetSize || len(raw.Flowers) > MaxBouquetSize {
		return fmt.Errorf("%w: got %d", ErrInvalidBouquetSize, len(raw.Flowers))
	}
	*g = ComposedGoods{
		id:         raw.ID,
		flowers:    raw.Flowers,
		signature:  signatureOf(raw.Flowers),
		label:      raw.Label,
		baseValue:  raw.BaseValue,
		createdDay: raw.CreatedDay,
	}
	return nil
}

// Recipe records a bouquet composition the player has made before
type Recipe struct {
	Signature     string `json:"signature"`
	Label         string `json:"label,omitempty"`
	FirstDay      int    `json:"first_day"`
	TimesComposed int    `json:"times_composed"`
}
