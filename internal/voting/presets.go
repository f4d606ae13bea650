package voting

import (
	"sort"
	"strconv"
)

// Preset is a named example profile.
type Preset struct {
	Name     string
	Rankings [][]int
	Counts   []int
}

// Profile builds the preset's [Profile].
func (p Preset) Profile() *Profile {
	prof, err := New(p.Rankings, p.Counts, len(p.Rankings[0]))
	if err != nil {
		panic("invalid preset " + p.Name + ": " + err.Error())
	}
	return prof
}

// ones returns n counts of one voter each.
func ones(n int) []int {
	cs := make([]int, n)
	for i := range cs {
		cs[i] = 1
	}
	return cs
}

var presets = map[string]Preset{
	"condorcet-cycle": {
		Name:     "Condorcet Cycle",
		Rankings: [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}},
		Counts:   ones(3),
	},
	"condorcet-cycle-winner": {
		Name:     "Condorcet Cycle with Winner",
		Rankings: [][]int{{3, 0, 1, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}},
		Counts:   ones(3),
	},
	"condorcet-cycle-loser": {
		Name:     "Condorcet Cycle with Loser",
		Rankings: [][]int{{0, 1, 2, 3}, {1, 2, 0, 3}, {2, 0, 1, 3}},
		Counts:   ones(3),
	},
	"illustrative-1": {
		Name:     "Illustrative Example 1",
		Rankings: [][]int{{0, 1, 2, 3}, {0, 2, 1, 3}, {1, 3, 2, 0}, {2, 1, 3, 0}},
		Counts:   []int{3, 5, 7, 6},
	},
	"illustrative-2": {
		Name:     "Illustrative Example 2",
		Rankings: [][]int{{0, 1, 2, 3}, {1, 2, 3, 0}, {3, 1, 2, 0}, {2, 3, 0, 1}},
		Counts:   []int{7, 5, 4, 3},
	},
	"illustrative-3": {
		Name:     "Illustrative Example 3",
		Rankings: [][]int{{2, 1, 3, 0}, {0, 2, 3, 1}, {1, 0, 2, 3}, {1, 0, 3, 2}, {3, 0, 2, 1}},
		Counts:   ones(5),
	},
}

// LookupPreset finds a preset by key (e.g. "condorcet-cycle").
func LookupPreset(key string) (Preset, bool) {
	p, ok := presets[key]
	return p, ok
}

// PresetKeys returns the preset keys in sorted order.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LetterNames names candidates a, b, c, ... then A, B, C, ... and falls back to c52, c53, ...
func LetterNames(n int) []string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	names := make([]string, n)
	for i := range names {
		if i < len(letters) {
			names[i] = string(letters[i])
		} else {
			names[i] = "c" + strconv.Itoa(i)
		}
	}
	return names
}
