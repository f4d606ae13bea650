package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/prefview/internal/shared"
)

// NoCandidate is the sentinel for "no candidate" in pinned and hover selectors.
const NoCandidate = -1

// DisplayArgs is the input record of the profile widget.
//
// Prof holds one ranking per column; Prof[col][row] is the candidate at rank row+1.
// RankSizes[col] is the number of voters who submitted Prof[col].
// A nil MarginMatrix means no margin table is shown.
type DisplayArgs struct {
	Prof         [][]int  `json:"prof" toml:"prof"`
	RankSizes    []int    `json:"rank_sizes" toml:"rank_sizes"`
	CandNames    []string `json:"cand_names" toml:"cand_names"`
	C1           int      `json:"-" toml:"-"`
	C2           int      `json:"-" toml:"-"`
	MarginMatrix [][]int  `json:"margin_matrix,omitempty" toml:"margin_matrix,omitempty"`
	NumCands     int      `json:"num_cands" toml:"num_cands"`
}

// wireArgs mirrors [DisplayArgs] with nullable pinned selectors.
type wireArgs struct {
	Prof         [][]int  `json:"prof" toml:"prof"`
	RankSizes    []int    `json:"rank_sizes" toml:"rank_sizes"`
	CandNames    []string `json:"cand_names" toml:"cand_names"`
	C1           *int     `json:"c1" toml:"c1"`
	C2           *int     `json:"c2" toml:"c2"`
	MarginMatrix [][]int  `json:"margin_matrix,omitempty" toml:"margin_matrix,omitempty"`
	NumCands     int      `json:"num_cands" toml:"num_cands"`
}

// NewDisplayArgs builds arguments with no pinned candidates and no margin matrix.
//
// NumCands is taken from the number of names.
func NewDisplayArgs(prof [][]int, rankSizes []int, candNames []string) DisplayArgs {
	return DisplayArgs{
		Prof:      prof,
		RankSizes: rankSizes,
		CandNames: candNames,
		C1:        NoCandidate,
		C2:        NoCandidate,
		NumCands:  len(candNames),
	}
}

// HasMargins reports whether a margin table should be rendered.
func (a DisplayArgs) HasMargins() bool {
	return a.MarginMatrix != nil
}

// NumVoters sums the rank sizes.
func (a DisplayArgs) NumVoters() int {
	total := 0
	for _, n := range a.RankSizes {
		total += n
	}
	return total
}

// Name returns the display name for candidate c.
func (a DisplayArgs) Name(c int) string {
	return a.CandNames[c]
}

// Validate checks index bounds and length consistency, wrapping [shared.ErrInvalidInput].
func (a DisplayArgs) Validate() error {
	if a.NumCands <= 0 {
		return fmt.Errorf("%w: num_cands must be positive, got %d", shared.ErrInvalidInput, a.NumCands)
	}
	if len(a.CandNames) < a.NumCands {
		return fmt.Errorf("%w: %d candidate names for %d candidates", shared.ErrInvalidInput, len(a.CandNames), a.NumCands)
	}
	if len(a.RankSizes) != len(a.Prof) {
		return fmt.Errorf("%w: %d rank sizes for %d rankings", shared.ErrInvalidInput, len(a.RankSizes), len(a.Prof))
	}

	for col, ranking := range a.Prof {
		if a.RankSizes[col] < 0 {
			return fmt.Errorf("%w: rank size %d of column %d is negative", shared.ErrInvalidInput, a.RankSizes[col], col)
		}
		if len(ranking) != a.NumCands {
			return fmt.Errorf("%w: column %d ranks %d candidates, want %d", shared.ErrInvalidInput, col, len(ranking), a.NumCands)
		}
		seen := make([]bool, a.NumCands)
		for row, c := range ranking {
			if c < 0 || c >= a.NumCands {
				return fmt.Errorf("%w: column %d row %d: candidate %d out of range [0, %d)", shared.ErrInvalidInput, col, row, c, a.NumCands)
			}
			if seen[c] {
				return fmt.Errorf("%w: column %d ranks candidate %d twice", shared.ErrInvalidInput, col, c)
			}
			seen[c] = true
		}
	}

	for _, pin := range []struct {
		name string
		c    int
	}{{"c1", a.C1}, {"c2", a.C2}} {
		if pin.c < NoCandidate || pin.c >= a.NumCands {
			return fmt.Errorf("%w: %s = %d out of range [-1, %d)", shared.ErrInvalidInput, pin.name, pin.c, a.NumCands)
		}
	}

	if a.MarginMatrix != nil {
		if len(a.MarginMatrix) != a.NumCands {
			return fmt.Errorf("%w: margin matrix has %d rows, want %d", shared.ErrInvalidInput, len(a.MarginMatrix), a.NumCands)
		}
		for i, row := range a.MarginMatrix {
			if len(row) != a.NumCands {
				return fmt.Errorf("%w: margin matrix row %d has %d entries, want %d", shared.ErrInvalidInput, i, len(row), a.NumCands)
			}
		}
	}

	return nil
}

// MarshalJSON writes pinned selectors as null when unset.
func (a DisplayArgs) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.wire())
}

// UnmarshalJSON maps null or missing pinned selectors to [NoCandidate].
func (a *DisplayArgs) UnmarshalJSON(data []byte) error {
	var w wireArgs
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = w.args()
	return nil
}

func (a DisplayArgs) wire() wireArgs {
	w := wireArgs{
		Prof:         a.Prof,
		RankSizes:    a.RankSizes,
		CandNames:    a.CandNames,
		MarginMatrix: a.MarginMatrix,
		NumCands:     a.NumCands,
	}
	if a.C1 != NoCandidate {
		c1 := a.C1
		w.C1 = &c1
	}
	if a.C2 != NoCandidate {
		c2 := a.C2
		w.C2 = &c2
	}
	return w
}

func (w wireArgs) args() DisplayArgs {
	a := DisplayArgs{
		Prof:         w.Prof,
		RankSizes:    w.RankSizes,
		CandNames:    w.CandNames,
		C1:           NoCandidate,
		C2:           NoCandidate,
		MarginMatrix: w.MarginMatrix,
		NumCands:     w.NumCands,
	}
	if w.C1 != nil {
		a.C1 = *w.C1
	}
	if w.C2 != nil {
		a.C2 = *w.C2
	}
	return a
}

// ArgsFormat names an argument file encoding.
type ArgsFormat string

const (
	FormatJSON ArgsFormat = "json"
	FormatTOML ArgsFormat = "toml"
)

// FormatFromPath infers the encoding from the file extension.
func FormatFromPath(path string) (ArgsFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: argument file %q (want .json or .toml)", shared.ErrUnknownFormat, path)
	}
}

// DecodeArgs parses and validates an argument record.
func DecodeArgs(data []byte, format ArgsFormat) (DisplayArgs, error) {
	var w wireArgs
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&w); err != nil {
			return DisplayArgs{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &w)
		if err != nil {
			return DisplayArgs{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return DisplayArgs{}, fmt.Errorf("%w: unknown key %q", shared.ErrInvalidInput, undecoded[0].String())
		}
	default:
		return DisplayArgs{}, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}

	args := w.args()
	if args.NumCands == 0 {
		args.NumCands = len(args.CandNames)
	}
	if err := args.Validate(); err != nil {
		return DisplayArgs{}, err
	}
	return args, nil
}

// LoadArgs reads an argument file, choosing the decoder from its extension.
func LoadArgs(path string) (DisplayArgs, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return DisplayArgs{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DisplayArgs{}, fmt.Errorf("failed to read argument file: %w", err)
	}

	return DecodeArgs(data, format)
}
