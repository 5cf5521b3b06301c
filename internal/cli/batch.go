package cli

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/kinetics-io/mech2ck/internal/cache"
	"github.com/kinetics-io/mech2ck/internal/mech"
	"github.com/kinetics-io/mech2ck/internal/model"
	"github.com/kinetics-io/mech2ck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <jobs.txt>",
	Short: "Convert multiple mechanisms from a job file in parallel",
	Long: `Batch converts many mechanisms concurrently:
- Read jobs from a file, one per line:
    <mechanism.yaml> <output.inp> [scale-factors.txt]
- Blank lines and # comments are ignored
- Repeated mechanism paths are parsed once (cached by path and mtime)
- Jobs run in parallel with configurable worker count

Example:
  mech2ck batch jobs.txt
  mech2ck batch jobs.txt --workers 8 --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable the parsed-mechanism cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobFile := args[0]

	jobs, err := readBatchJobs(jobFile)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs in %s", jobFile)
	}

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !batchNoCache

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	loader := mech.NewLoader(store, cfg.Cache.TTL)

	fmt.Fprintf(os.Stderr, "⚙️  Converting %d mechanisms with %d workers...\n", len(jobs), batchWorkers)

	pool := worker.NewPool(batchWorkers)
	pool.Start()
	for _, job := range jobs {
		pool.Submit(&worker.ConvertJob{
			Loader:    loader,
			MechPath:  job.mechPath,
			ScalePath: job.scalePath,
			OutPath:   job.outPath,
		})
	}
	results := pool.Wait()

	successCount := 0
	failureCount := 0
	for _, r := range results {
		cr, ok := r.(*worker.ConvertResult)
		if !ok {
			continue
		}
		if cr.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", cr.MechPath, cr.Err)
			continue
		}
		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", cr.MechPath, cr.OutPath)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d jobs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d conversions failed", failureCount, len(results))
	}
	return nil
}

type batchJob struct {
	mechPath  string
	outPath   string
	scalePath string
}

// readBatchJobs parses the job file: mechanism path, output path and an
// optional scale-factor path per line.
func readBatchJobs(path string) ([]batchJob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	defer f.Close()

	var jobs []batchJob
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("job file %s:%d: want \"<mechanism> <output> [scale-factors]\", got %d fields", path, lineNo, len(fields))
		}
		job := batchJob{mechPath: fields[0], outPath: fields[1]}
		if len(fields) == 3 {
			job.scalePath = fields[2]
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return jobs, nil
}
