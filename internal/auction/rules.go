package auction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/Bouquet_Go/internal/domain"
)

// Predicate decides whether a rule applies to a bouquet
type Predicate func(g *domain.ComposedGoods) bool

// Rule is a named multiplier with the composition it rewards
type Rule struct {
	Name   string
	Reason string
	Factor float64
	Match  Predicate
}

// RuleSet is a fixed catalog of multiplier rules, kept in name order
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a catalog. Every factor must be greater than one and names unique.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	seen := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Name == "" || r.Match == nil {
			return nil, fmt.Errorf("%w: rule needs a name and a predicate", domain.ErrInvalidInput)
		}
		if r.Factor <= 1 {
			return nil, fmt.Errorf("%w: rule %s has factor %.2f", domain.ErrInvalidInput, r.Name, r.Factor)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: duplicate rule %s", domain.ErrInvalidInput, r.Name)
		}
		seen[r.Name] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return &RuleSet{rules: out}, nil
}

// Rules returns a copy of the catalog
func (rs *RuleSet) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

// Lookup finds a rule by name
func (rs *RuleSet) Lookup(name string) (Rule, bool) {
	for _, r := range rs.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Available returns the rules matching goods that are not in applied
func (rs *RuleSet) Available(goods *domain.ComposedGoods, applied []string) []Rule {
	if goods == nil {
		return nil
	}
	used := make(map[string]bool, len(applied))
	for _, name := range applied {
		used[name] = true
	}

	var out []Rule
	for _, r := range rs.rules {
		if !used[r.Name] && r.Match(goods) {
			out = append(out, r)
		}
	}
	return out
}

// AllInStage matches bouquets whose flowers all share stage
func AllInStage(stage domain.Stage) Predicate {
	return func(g *domain.ComposedGoods) bool {
		for _, f := range g.Flowers() {
			if f.Stage != stage {
				return false
			}
		}
		return true
	}
}

// SameStage matches bouquets whose flowers all share one stage
func SameStage() Predicate {
	return func(g *domain.ComposedGoods) bool {
		flowers := g.Flowers()
		for _, f := range flowers[1:] {
			if f.Stage != flowers[0].Stage {
				return false
			}
		}
		return true
	}
}

// SameName matches bouquets made of a single kind of flower
func SameName() Predicate {
	return func(g *domain.ComposedGoods) bool {
		flowers := g.Flowers()
		for _, f := range flowers[1:] {
			if f.Name != flowers[0].Name {
				return false
			}
		}
		return true
	}
}

// ExactlyOfOneName matches bouquets of exactly n flowers sharing one name
func ExactlyOfOneName(n int) Predicate {
	same := SameName()
	return func(g *domain.ComposedGoods) bool {
		return g.Size() == n && same(g)
	}
}

// SizeAtLeast matches bouquets with n or more flowers
func SizeAtLeast(n int) Predicate {
	return func(g *domain.ComposedGoods) bool { return g.Size() >= n }
}

// SizeExactly matches bouquets with exactly n flowers
func SizeExactly(n int) Predicate {
	return func(g *domain.ComposedGoods) bool { return g.Size() == n }
}

// ContainsName matches bouquets holding a flower whose name contains substr
func ContainsName(substr string) Predicate {
	substr = strings.ToLower(substr)
	return func(g *domain.ComposedGoods) bool {
		for _, f := range g.Flowers() {
			if strings.Contains(strings.ToLower(f.Name), substr) {
				return true
			}
		}
		return false
	}
}

// DefaultRules returns the stock multiplier catalog
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleAllWithered, Reason: "A bouquet of nothing but withered flowers is a collector's oddity", Factor: 50, Match: AllInStage(domain.StageWithered)},
		{Name: RuleAllMutated, Reason: "Every flower is a mutation", Factor: 25, Match: AllInStage(domain.StageMutated)},
		{Name: RuleAllMatured, Reason: "Every flower is fully matured", Factor: 6, Match: AllInStage(domain.StageMatured)},
		{Name: RuleAllBloomed, Reason: "Every flower is in full bloom", Factor: 3, Match: AllInStage(domain.StageBloomed)},
		{Name: RuleSameStage, Reason: "All flowers share one stage", Factor: 2, Match: SameStage()},
		{Name: RuleSameName, Reason: "All flowers are the same kind", Factor: 4, Match: SameName()},
		{Name: RuleRoyalDozen, Reason: "Exactly a dozen of one kind", Factor: 12, Match: ExactlyOfOneName(domain.MaxBouquetSize)},
		{Name: RuleGrandBouquet, Reason: "Ten flowers or more", Factor: 2.5, Match: SizeAtLeast(10)},
		{Name: RuleTrio, Reason: "A tidy trio", Factor: 1.5, Match: SizeExactly(domain.MinBouquetSize)},
		{Name: RuleHasRose, Reason: "Contains a rose", Factor: 1.75, Match: ContainsName("rose")},
	}
}
