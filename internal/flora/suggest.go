package flora

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the known name closest to name when it is within a length scaled edit
// distance. Ties go to the alphabetically first name.
func Suggest(known []string, name string) (string, bool) {
	name = Normalize(name)
	if name == "" {
		return "", false
	}

	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for _, k := range known {
		dist := levenshtein.ComputeDistance(name, k)
		if dist > distanceLimit(len(k)) {
			continue
		}
		cands = append(cands, candidate{name: k, dist: dist})
	}
	if len(cands) == 0 {
		return "", false
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].name, true
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
