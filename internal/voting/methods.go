package voting

import "slices"

// Method is a named voting method returning its (possibly tied) winners.
type Method struct {
	Key     string
	Name    string
	Winners func(*Profile) []int
}

// Methods lists the supported voting methods in display order.
var Methods = []Method{
	{Key: "plurality", Name: "Plurality", Winners: func(p *Profile) []int { return Winners(p.PluralityScores()) }},
	{Key: "borda", Name: "Borda", Winners: func(p *Profile) []int { return Winners(p.BordaScores()) }},
	{Key: "plurality_with_runoff", Name: "Plurality with Runoff", Winners: (*Profile).PluralityWithRunoff},
	{Key: "instant_runoff", Name: "Instant Runoff", Winners: func(p *Profile) []int { return p.InstantRunoff().Winners }},
	{Key: "coombs", Name: "Coombs", Winners: func(p *Profile) []int { return p.Coombs().Winners }},
	{Key: "minimax", Name: "Minimax", Winners: (*Profile).Minimax},
	{Key: "copeland", Name: "Copeland", Winners: (*Profile).Copeland},
	{Key: "split_cycle", Name: "Split Cycle", Winners: (*Profile).SplitCycle},
}

// Losers returns every candidate with the minimum score.
func Losers(scores []int) []int {
	neg := make([]int, len(scores))
	for c, s := range scores {
		neg[c] = -s
	}
	return Winners(neg)
}

// LastPlaceScores counts last-place votes per candidate.
func (p *Profile) LastPlaceScores() []int {
	scores := make([]int, p.NumCands)
	for i, r := range p.Rankings {
		if len(r) > 0 {
			scores[r[len(r)-1]] += p.Counts[i]
		}
	}
	return scores
}

// Restrict drops every candidate not in remaining and renumbers the rest, so that candidate i
// of the result is remaining[i]. Rankings that become identical are merged in order of first appearance.
//
// remaining must be ascending and within 0..NumCands-1.
func (p *Profile) Restrict(remaining []int) *Profile {
	index := make([]int, p.NumCands)
	for c := range index {
		index[c] = -1
	}
	for i, c := range remaining {
		index[c] = i
	}

	var (
		rankings [][]int
		counts   []int
	)
	seen := map[string]int{}
	for i, r := range p.Rankings {
		reduced := make([]int, 0, len(remaining))
		for _, c := range r {
			if index[c] >= 0 {
				reduced = append(reduced, index[c])
			}
		}
		key := rankingKey(reduced)
		if j, ok := seen[key]; ok {
			counts[j] += p.Counts[i]
			continue
		}
		seen[key] = len(rankings)
		rankings = append(rankings, reduced)
		counts = append(counts, p.Counts[i])
	}

	prof, err := New(rankings, counts, len(remaining))
	if err != nil {
		panic("restrict: " + err.Error())
	}
	return prof
}

// PluralityWithRunoff returns the majority winner when there is one. Otherwise it holds runoffs
// between the candidates tied for most first places, or between the plurality leader and each
// candidate tied for second. Every runoff winner wins, and a tied runoff elects both sides.
// When all candidates tie for first, all win.
func (p *Profile) PluralityWithRunoff() []int {
	if w, ok := p.MajorityWinner(); ok {
		return []int{w}
	}

	scores := p.PluralityScores()
	top := Winners(scores)
	if len(top) == p.NumCands {
		return top
	}

	var pairs [][2]int
	if len(top) > 1 {
		for i, a := range top {
			for _, b := range top[i+1:] {
				pairs = append(pairs, [2]int{a, b})
			}
		}
	} else {
		rest := slices.Clone(scores)
		rest[top[0]] = -1
		for _, b := range Winners(rest) {
			pairs = append(pairs, [2]int{top[0], b})
		}
	}

	won := make([]bool, p.NumCands)
	for _, pair := range pairs {
		m := p.Margin(pair[0], pair[1])
		if m >= 0 {
			won[pair[0]] = true
		}
		if m <= 0 {
			won[pair[1]] = true
		}
	}

	var ws []int
	for c, ok := range won {
		if ok {
			ws = append(ws, c)
		}
	}
	return ws
}

// Round is one step of a sequential elimination.
type Round struct {
	Removed   []int    // candidates eliminated in this round
	Remaining []int    // candidates left afterwards, ascending
	Profile   *Profile // the profile over Remaining; its candidate i is Remaining[i]
}

// Elimination is the outcome of a sequential elimination method with the profile after each round.
type Elimination struct {
	Winners []int
	Rounds  []Round
}

// InstantRunoff stops at the first majority winner and otherwise removes every candidate with
// the fewest first places. When all remaining candidates tie, they all win.
func (p *Profile) InstantRunoff() Elimination {
	return p.eliminate(func(q *Profile) []int { return Losers(q.PluralityScores()) })
}

// Coombs stops at the first majority winner and otherwise removes every candidate with the most
// last places. When all remaining candidates tie, they all win.
func (p *Profile) Coombs() Elimination {
	return p.eliminate(func(q *Profile) []int { return Winners(q.LastPlaceScores()) })
}

// eliminate runs rounds until a majority winner appears or every remaining candidate would be removed.
// out picks the candidates of a reduced profile to remove.
func (p *Profile) eliminate(out func(*Profile) []int) Elimination {
	remaining := p.Candidates()
	cur := p
	var rounds []Round

	for {
		if w, ok := cur.MajorityWinner(); ok {
			return Elimination{Winners: []int{remaining[w]}, Rounds: rounds}
		}

		losers := out(cur)
		if len(losers) == len(remaining) {
			return Elimination{Winners: remaining, Rounds: rounds}
		}

		removed := make([]int, len(losers))
		for i, c := range losers {
			removed[i] = remaining[c]
		}
		next := make([]int, 0, len(remaining)-len(removed))
		for _, c := range remaining {
			if !slices.Contains(removed, c) {
				next = append(next, c)
			}
		}

		cur = p.Restrict(next)
		remaining = next
		rounds = append(rounds, Round{Removed: removed, Remaining: next, Profile: cur})
	}
}

// MinimaxLosses gives each candidate's largest head-to-head loss, the maximum margin of any
// other candidate over it. A lone candidate has no loss.
func (p *Profile) MinimaxLosses() []int {
	losses := make([]int, p.NumCands)
	for c := range losses {
		worst, seen := 0, false
		for d := 0; d < p.NumCands; d++ {
			if d == c {
				continue
			}
			if m := p.Margin(d, c); !seen || m > worst {
				worst, seen = m, true
			}
		}
		losses[c] = worst
	}
	return losses
}

// Minimax returns the candidates with the smallest largest loss.
func (p *Profile) Minimax() []int {
	return Losers(p.MinimaxLosses())
}

// CopelandScores is the number of candidates each candidate beats minus the number it loses to.
func (p *Profile) CopelandScores() []int {
	scores := make([]int, p.NumCands)
	for a := 0; a < p.NumCands; a++ {
		for b := a + 1; b < p.NumCands; b++ {
			switch m := p.Margin(a, b); {
			case m > 0:
				scores[a]++
				scores[b]--
			case m < 0:
				scores[a]--
				scores[b]++
			}
		}
	}
	return scores
}

// Copeland returns the candidates with the best win-loss record.
func (p *Profile) Copeland() []int {
	return Winners(p.CopelandScores())
}

// SplitCycleDefeats reports D with D[a][b] when a defeats b: a beats b head to head by more than
// the strength of the strongest majority path from b back to a. A path is as strong as its weakest margin.
// These are exactly the wins that survive discarding the weakest win of every majority cycle.
func (p *Profile) SplitCycleDefeats() [][]bool {
	n := p.NumCands
	m := p.MarginMatrix()

	strength := make([][]int, n)
	for a := range strength {
		strength[a] = make([]int, n)
		for b := range strength[a] {
			if m[a][b] > 0 {
				strength[a][b] = m[a][b]
			}
		}
	}
	for k := 0; k < n; k++ {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a != b {
					strength[a][b] = max(strength[a][b], min(strength[a][k], strength[k][b]))
				}
			}
		}
	}

	defeats := make([][]bool, n)
	for a := range defeats {
		defeats[a] = make([]bool, n)
		for b := range defeats[a] {
			defeats[a][b] = m[a][b] > 0 && m[a][b] > strength[b][a]
		}
	}
	return defeats
}

// SplitCycle returns the candidates no one defeats.
func (p *Profile) SplitCycle() []int {
	defeats := p.SplitCycleDefeats()
	var ws []int
	for b := 0; b < p.NumCands; b++ {
		beaten := false
		for a := 0; a < p.NumCands; a++ {
			beaten = beaten || defeats[a][b]
		}
		if !beaten {
			ws = append(ws, b)
		}
	}
	return ws
}
