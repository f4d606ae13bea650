package voting

import "fmt"

// Profile is a set of grouped strict rankings over NumCands candidates.
type Profile struct {
	Rankings [][]int
	Counts   []int
	NumCands int

	// ranks[i][c] is the position of candidate c in Rankings[i]
	ranks [][]int
}

// New builds a Profile. Rankings must be complete strict orders of 0..numCands-1.
func New(rankings [][]int, counts []int, numCands int) (*Profile, error) {
	if len(rankings) != len(counts) {
		return nil, fmt.Errorf("%d rankings but %d counts", len(rankings), len(counts))
	}

	ranks := make([][]int, len(rankings))
	for i, r := range rankings {
		if len(r) != numCands {
			return nil, fmt.Errorf("ranking %d has %d candidates, want %d", i, len(r), numCands)
		}
		ranks[i] = make([]int, numCands)
		for j := range ranks[i] {
			ranks[i][j] = -1
		}
		for pos, c := range r {
			if c < 0 || c >= numCands || ranks[i][c] != -1 {
				return nil, fmt.Errorf("ranking %d is not a strict order of %d candidates", i, numCands)
			}
			ranks[i][c] = pos
		}
	}

	return &Profile{Rankings: rankings, Counts: counts, NumCands: numCands, ranks: ranks}, nil
}

// Candidates returns 0..NumCands-1.
func (p *Profile) Candidates() []int {
	cs := make([]int, p.NumCands)
	for i := range cs {
		cs[i] = i
	}
	return cs
}

// NumVoters sums the counts.
func (p *Profile) NumVoters() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n
}

// StrictMajority is the smallest number of voters that is more than half.
func (p *Profile) StrictMajority() int {
	return p.NumVoters()/2 + 1
}

// Support is the number of voters ranking a strictly above b.
func (p *Profile) Support(a, b int) int {
	n := 0
	for i, r := range p.ranks {
		if r[a] < r[b] {
			n += p.Counts[i]
		}
	}
	return n
}

// Margin is Support(a, b) - Support(b, a).
func (p *Profile) Margin(a, b int) int {
	return p.Support(a, b) - p.Support(b, a)
}

// MajorityPrefers reports whether a has a positive margin over b.
func (p *Profile) MajorityPrefers(a, b int) bool {
	return p.Margin(a, b) > 0
}

// MarginMatrix returns M with M[a][b] = Margin(a, b). The diagonal is zero and M is antisymmetric.
func (p *Profile) MarginMatrix() [][]int {
	m := make([][]int, p.NumCands)
	for a := range m {
		m[a] = make([]int, p.NumCands)
	}
	for a := 0; a < p.NumCands; a++ {
		for b := a + 1; b < p.NumCands; b++ {
			margin := p.Margin(a, b)
			m[a][b] = margin
			m[b][a] = -margin
		}
	}
	return m
}

// CondorcetWinner returns the candidate majority preferred to every other candidate.
func (p *Profile) CondorcetWinner() (int, bool) {
	for _, a := range p.Candidates() {
		wins := true
		for _, b := range p.Candidates() {
			if a != b && !p.MajorityPrefers(a, b) {
				wins = false
				break
			}
		}
		if wins {
			return a, true
		}
	}
	return -1, false
}

// CondorcetLoser returns the candidate every other candidate is majority preferred to.
func (p *Profile) CondorcetLoser() (int, bool) {
	for _, a := range p.Candidates() {
		loses := true
		for _, b := range p.Candidates() {
			if a != b && !p.MajorityPrefers(b, a) {
				loses = false
				break
			}
		}
		if loses {
			return a, true
		}
	}
	return -1, false
}

// PluralityScores counts first-place votes per candidate.
func (p *Profile) PluralityScores() []int {
	scores := make([]int, p.NumCands)
	for i, r := range p.Rankings {
		if len(r) > 0 {
			scores[r[0]] += p.Counts[i]
		}
	}
	return scores
}

// MajorityWinner returns the candidate ranked first by a strict majority.
func (p *Profile) MajorityWinner() (int, bool) {
	need := p.StrictMajority()
	for c, s := range p.PluralityScores() {
		if s >= need {
			return c, true
		}
	}
	return -1, false
}

// BordaScores gives NumCands-1 points for first place down to 0 for last, summed over voters.
func (p *Profile) BordaScores() []int {
	scores := make([]int, p.NumCands)
	for i, r := range p.Rankings {
		for pos, c := range r {
			scores[c] += (p.NumCands - 1 - pos) * p.Counts[i]
		}
	}
	return scores
}

// Winners returns every candidate with the maximum score.
func Winners(scores []int) []int {
	var ws []int
	best := 0
	for c, s := range scores {
		switch {
		case len(ws) == 0 || s > best:
			best = s
			ws = []int{c}
		case s == best:
			ws = append(ws, c)
		}
	}
	return ws
}
