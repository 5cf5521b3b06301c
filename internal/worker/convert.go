package worker

import (
	"context"

	"github.com/kinetics-io/mech2ck/internal/chemkin"
	"github.com/kinetics-io/mech2ck/internal/mech"
)

// ConvertJob converts one mechanism file. The loader is shared between jobs
// so batch runs reusing the same mechanism hit the parse cache.
type ConvertJob struct {
	Loader    *mech.Loader
	MechPath  string
	ScalePath string // optional; empty means all-ones
	OutPath   string
}

// Execute executes the convert job
func (j *ConvertJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ConvertResult{MechPath: j.MechPath, OutPath: j.OutPath, Err: err}
	}

	m, err := j.Loader.Load(j.MechPath)
	if err != nil {
		return &ConvertResult{MechPath: j.MechPath, OutPath: j.OutPath, Err: err}
	}

	var factors []float64
	if j.ScalePath != "" {
		factors, err = mech.ReadScaleFactors(j.ScalePath)
		if err != nil {
			return &ConvertResult{MechPath: j.MechPath, OutPath: j.OutPath, Err: err}
		}
	}

	path, err := chemkin.Write(m, factors, j.OutPath)
	if err != nil {
		return &ConvertResult{MechPath: j.MechPath, OutPath: j.OutPath, Err: err}
	}
	return &ConvertResult{MechPath: j.MechPath, OutPath: path}
}

// ConvertResult represents the result of a convert job
type ConvertResult struct {
	MechPath string
	OutPath  string
	Err      error
}

// GetError returns the error from the convert result
func (r *ConvertResult) GetError() error {
	return r.Err
}
