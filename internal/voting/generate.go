package voting

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Generate draws numVoters uniformly random strict rankings over numCands candidates
// and groups identical rankings, keeping the order in which each ranking first appeared.
func Generate(numCands, numVoters int, rng *rand.Rand) (*Profile, error) {
	if numCands < 1 {
		return nil, fmt.Errorf("need at least one candidate, got %d", numCands)
	}
	if numVoters < 1 {
		return nil, fmt.Errorf("need at least one voter, got %d", numVoters)
	}

	index := map[string]int{}
	var rankings [][]int
	var counts []int

	for range numVoters {
		r := rng.Perm(numCands)
		key := rankingKey(r)
		if i, ok := index[key]; ok {
			counts[i]++
			continue
		}
		index[key] = len(rankings)
		rankings = append(rankings, r)
		counts = append(counts, 1)
	}

	return New(rankings, counts, numCands)
}

// NewRand returns a PCG-backed generator; seed 0 draws a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func rankingKey(r []int) string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}
