package automatic

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/connect4/board"
	"github.com/domino14/connect4/stats"
)

// Summary is a serializable view of a stats.Statistic.
type Summary struct {
	Samples  int     `yaml:"samples"`
	Mean     float64 `yaml:"mean"`
	Stdev    float64 `yaml:"stdev"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Interval float64 `yaml:"interval"`
}

func summarize(s *stats.Statistic, confidence float64) Summary {
	return Summary{
		Samples:  s.Iterations(),
		Mean:     s.Mean(),
		Stdev:    s.Stdev(),
		Min:      s.Min(),
		Max:      s.Max(),
		Interval: s.MeanInterval(confidence),
	}
}

// PlySummary is the live window count after a given ply, over every game
// that lasted that long.
type PlySummary struct {
	Ply    int     `yaml:"ply"`
	Active Summary `yaml:"active"`
}

// Report is what a batch of random games produced.
type Report struct {
	Games      int     `yaml:"games"`
	RedWins    int     `yaml:"red_wins"`
	YellowWins int     `yaml:"yellow_wins"`
	Draws      int     `yaml:"draws"`
	Confidence float64 `yaml:"confidence"`
	Length     Summary `yaml:"length"`
	// DistinctFinal is only filled in when hashing is on.
	DistinctFinal int          `yaml:"distinct_final_positions,omitempty"`
	PerPly        []PlySummary `yaml:"per_ply"`

	lengths []float64
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// LengthHistogram buckets the game lengths into bins.
func (r *Report) LengthHistogram(bins int) histogram.Histogram {
	return histogram.Hist(bins, r.lengths)
}

// PrintLengthHistogram draws the game-length histogram as text.
func (r *Report) PrintLengthHistogram(w io.Writer, bins, width int) error {
	if len(r.lengths) == 0 {
		return nil
	}
	return histogram.Fprint(w, r.LengthHistogram(bins), histogram.Linear(width))
}

// tally accumulates results; one per worker, merged at the end.
type tally struct {
	games  int
	wins   [3]int
	length stats.Statistic
	perPly [board.NumCells]stats.Statistic
	hashes map[uint64]struct{}

	lengths []float64
}

func newTally(hashing bool) *tally {
	t := &tally{}
	if hashing {
		t.hashes = make(map[uint64]struct{})
	}
	return t
}

func (t *tally) add(res *GameResult) {
	t.games++
	t.wins[res.Winner]++
	t.length.Push(float64(res.Plies))
	t.lengths = append(t.lengths, float64(res.Plies))
	for i, n := range res.Active {
		t.perPly[i].Push(float64(n))
	}
	if t.hashes != nil {
		t.hashes[res.FinalHash] = struct{}{}
	}
}

func (t *tally) merge(o *tally) {
	t.games += o.games
	for i := range t.wins {
		t.wins[i] += o.wins[i]
	}
	t.length.Merge(&o.length)
	t.lengths = append(t.lengths, o.lengths...)
	for i := range t.perPly {
		t.perPly[i].Merge(&o.perPly[i])
	}
	if t.hashes != nil {
		for h := range o.hashes {
			t.hashes[h] = struct{}{}
		}
	}
}

func (t *tally) report(confidence float64) *Report {
	plies := lo.Filter(lo.Range(board.NumCells), func(i int, _ int) bool {
		return t.perPly[i].Iterations() > 0
	})
	return &Report{
		Games:         t.games,
		RedWins:       t.wins[board.Red],
		YellowWins:    t.wins[board.Yellow],
		Draws:         t.wins[board.Empty],
		Confidence:    confidence,
		Length:        summarize(&t.length, confidence),
		DistinctFinal: len(t.hashes),
		PerPly: lo.Map(plies, func(i int, _ int) PlySummary {
			return PlySummary{Ply: i + 1, Active: summarize(&t.perPly[i], confidence)}
		}),
		lengths: t.lengths,
	}
}
