package flora

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// csvColumns is the header the attribute table file must carry, in order. The trailing
// columns hold the value of the flower in each stage.
var csvColumns = []string{
	"name", "seed_cost", "difficulty", "durability", "nrg_restored", "woody",
	"seed", "seedling", "bloomed", "matured", "withered", "mutated",
}

const firstStageColumn = 6

// Table is an in-memory attribute table
type Table struct {
	flowers map[string]Flower
	names   []string
}

// NewTable indexes flowers by normalized name. Names must be unique.
func NewTable(flowers []Flower) (*Table, error) {
	t := &Table{flowers: make(map[string]Flower, len(flowers))}
	for _, f := range flowers {
		key := Normalize(f.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: flower without a name", domain.ErrInvalidInput)
		}
		if _, dup := t.flowers[key]; dup {
			return nil, fmt.Errorf("%w: duplicate flower %q", domain.ErrInvalidInput, f.Name)
		}
		if f.Durability <= 0 {
			return nil, fmt.Errorf("%w: flower %q needs positive durability", domain.ErrInvalidInput, f.Name)
		}
		f.Name = key
		t.flowers[key] = f
		t.names = append(t.names, key)
	}
	sort.Strings(t.names)
	return t, nil
}

// LoadTable reads an attribute table file
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flower table: %w", err)
	}
	defer f.Close()

	flowers, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return NewTable(flowers)
}

// ParseCSV reads flowers from CSV with the csvColumns header
func ParseCSV(r io.Reader) ([]Flower, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", domain.ErrInvalidInput, err)
	}
	if strings.Join(header, ",") != strings.Join(csvColumns, ",") {
		return nil, fmt.Errorf("%w: header must be %s", domain.ErrInvalidInput, strings.Join(csvColumns, ","))
	}

	var flowers []Flower
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		f, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		flowers = append(flowers, f)
	}
	return flowers, nil
}

func parseRecord(rec []string) (Flower, error) {
	var (
		f   = Flower{Name: rec[0], Values: make(map[domain.Stage]float64, len(domain.AllStages))}
		err error
	)
	if f.SeedCost, err = parseFloat(rec[1], "seed_cost"); err != nil {
		return f, err
	}
	if f.Difficulty, err = parseInt(rec[2], "difficulty"); err != nil {
		return f, err
	}
	if f.Durability, err = parseFloat(rec[3], "durability"); err != nil {
		return f, err
	}
	if f.NRGRestored, err = parseInt(rec[4], "nrg_restored"); err != nil {
		return f, err
	}
	if f.Woody, err = strconv.ParseBool(rec[5]); err != nil {
		return f, fmt.Errorf("%w: woody: %v", domain.ErrInvalidInput, err)
	}
	for i, stage := range domain.AllStages {
		v, err := parseFloat(rec[firstStageColumn+i], string(stage))
		if err != nil {
			return f, err
		}
		f.Values[stage] = v
	}
	return f, nil
}

func parseFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, field, s)
	}
	return v, nil
}

func parseInt(s, field string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, field, s)
	}
	return v, nil
}

// Lookup implements Registry
func (t *Table) Lookup(_ context.Context, name string) (Flower, error) {
	f, ok := t.flowers[Normalize(name)]
	if !ok {
		return Flower{}, NotFound(name, t.names)
	}
	return f, nil
}

// Names implements Registry
func (t *Table) Names(_ context.Context) ([]string, error) {
	return append([]string(nil), t.names...), nil
}

// Flowers returns every row in name order
func (t *Table) Flowers() []Flower {
	out := make([]Flower, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, t.flowers[n])
	}
	return out
}
