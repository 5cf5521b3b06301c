package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kinetics-io/mech2ck/internal/chemkin"
	"github.com/kinetics-io/mech2ck/internal/model"
)

// WriteJob writes one mechanism file with the given scale-factor vector
type WriteJob struct {
	Mechanism *model.Mechanism
	Factors   []float64
	OutPath   string
	Index     int // reaction index this job perturbs, -1 for plain writes
}

// Execute executes the write job
func (j *WriteJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &WriteResult{Path: j.OutPath, Index: j.Index, Err: err}
	}
	path, err := chemkin.Write(j.Mechanism, j.Factors, j.OutPath)
	return &WriteResult{Path: path, Index: j.Index, Err: err}
}

// WriteResult represents the result of a write job
type WriteResult struct {
	Path  string
	Index int
	Err   error
}

// GetError returns the error from the write result
func (r *WriteResult) GetError() error {
	return r.Err
}

// SweepRunner writes one perturbed mechanism per reaction: file i carries
// the sweep factor on reaction i's pre-exponential factor and 1.0 on every
// other reaction. Used to generate sensitivity-analysis input decks.
type SweepRunner struct {
	workers int
	factor  float64
}

// NewSweepRunner creates a sweep runner
func NewSweepRunner(workers int, factor float64) *SweepRunner {
	return &SweepRunner{workers: workers, factor: factor}
}

// Run writes the full sweep into outDir, naming files <prefix>_<i>. Results
// are returned in reaction order.
func (s *SweepRunner) Run(ctx context.Context, m *model.Mechanism, outDir, prefix string) []*WriteResult {
	n := m.NReactions()
	if n == 0 {
		return []*WriteResult{}
	}

	pool := NewPool(s.workers)
	pool.Start()

	for i := 0; i < n; i++ {
		factors := make([]float64, n)
		for j := range factors {
			factors[j] = 1.0
		}
		factors[i] = s.factor

		pool.Submit(&WriteJob{
			Mechanism: m,
			Factors:   factors,
			OutPath:   filepath.Join(outDir, fmt.Sprintf("%s_%d", prefix, i)),
			Index:     i,
		})
	}

	raw := pool.Wait()
	results := make([]*WriteResult, 0, len(raw))
	for _, r := range raw {
		if wr, ok := r.(*WriteResult); ok {
			results = append(results, wr)
		}
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Index < results[b].Index })
	return results
}
