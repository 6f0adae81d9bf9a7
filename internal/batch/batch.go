// Package batch drives stub-to-summary conversion over files and
// directory trees.
package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/phobologic/typeshed2spec/internal/convert"
	"github.com/phobologic/typeshed2spec/internal/discover"
	"github.com/phobologic/typeshed2spec/internal/lang"
	"github.com/phobologic/typeshed2spec/internal/logger"
	"github.com/phobologic/typeshed2spec/internal/parse"
	"github.com/phobologic/typeshed2spec/internal/summary"
)

// OutputExt is the extension of every generated summary file.
const OutputExt = ".xml"

var (
	// ErrNotDirectory is returned when the output path exists but is not a directory.
	ErrNotDirectory = errors.New("output path is not a directory")
	// ErrNoInputs is returned when a directory holds no stub files.
	ErrNoInputs = errors.New("no stub files found")
)

// Options configures a batch run.
type Options struct {
	Input            string // stub file or directory
	OutputDir        string
	Extensions       []string
	RespectGitignore bool
	Logger           *zap.SugaredLogger
}

// Job is one stub file and the summary it produces.
type Job struct {
	Source  string // path to the stub file
	Package string // package name used inside the summary
	Output  string // path of the generated summary
}

// Plan resolves the input into jobs without touching the output directory.
func Plan(opts Options) ([]Job, error) {
	info, err := os.Stat(opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "input path")
	}

	if !info.IsDir() {
		return []Job{newJob(opts.Input, opts.OutputDir)}, nil
	}

	files, err := discover.Files(opts.Input, discover.Options{
		Extensions:       opts.Extensions,
		RespectGitignore: opts.RespectGitignore,
	})
	if err != nil {
		return nil, errors.Wrap(err, "discovering files")
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoInputs, "%s", opts.Input)
	}

	jobs := make([]Job, 0, len(files))
	for _, f := range files {
		jobs = append(jobs, newJob(filepath.Join(opts.Input, f.Path), opts.OutputDir))
	}
	return jobs, nil
}

func newJob(source, outDir string) Job {
	base := filepath.Base(source)
	pkg := strings.TrimSuffix(base, filepath.Ext(base))
	return Job{
		Source:  source,
		Package: pkg,
		Output:  filepath.Join(outDir, pkg+OutputExt),
	}
}

// Run converts every planned job in order and writes the summaries. The
// first failing file stops the batch; jobs completed before it are returned.
func Run(ctx context.Context, opts Options) ([]Job, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	jobs, err := Plan(opts)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(opts.OutputDir); err != nil {
		return nil, err
	}

	parser := lang.Python.NewParser()
	defer parser.Close()

	written := make(map[string]string, len(jobs))
	done := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if prev, ok := written[job.Output]; ok {
			log.Warnw("output overwritten", logger.FieldOutput, job.Output, logger.FieldFile, prev)
		}

		start := time.Now()
		log.Infow("converting", logger.FieldFile, job.Source, logger.FieldPackage, job.Package)

		data, err := Render(ctx, parser, job, log)
		if err != nil {
			return done, err
		}
		if err := os.WriteFile(job.Output, data, 0o644); err != nil {
			return done, errors.Wrapf(err, "writing %s", job.Output)
		}

		log.Infow("written",
			logger.FieldFile, job.Source,
			logger.FieldOutput, job.Output,
			logger.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		written[job.Output] = job.Source
		done = append(done, job)
	}

	log.Infow("batch complete", logger.FieldCount, len(done), logger.FieldOutput, opts.OutputDir)
	return done, nil
}

// Render parses, converts and serializes a single job's stub file.
func Render(ctx context.Context, parser *sitter.Parser, job Job, log *zap.SugaredLogger) ([]byte, error) {
	source, err := os.ReadFile(job.Source)
	if err != nil {
		return nil, errors.Wrap(err, "reading stub")
	}

	mod, err := parse.Stub(ctx, parser, source)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", job.Source)
	}

	root, err := convert.Convert(mod, job.Package, convert.WithLogger(log))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", job.Source)
	}

	var buf bytes.Buffer
	if err := summary.Encode(&buf, root); err != nil {
		return nil, errors.Wrapf(err, "encoding %s", job.Source)
	}
	return buf.Bytes(), nil
}

// Check renders every job in memory and returns those whose output file is
// missing or differs from what Run would write.
func Check(ctx context.Context, opts Options) ([]Job, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	jobs, err := Plan(opts)
	if err != nil {
		return nil, err
	}

	parser := lang.Python.NewParser()
	defer parser.Close()

	var stale []Job
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return stale, err
		}
		want, err := Render(ctx, parser, job, log)
		if err != nil {
			return stale, err
		}
		got, err := os.ReadFile(job.Output)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return stale, errors.Wrapf(err, "reading %s", job.Output)
		}
		if err != nil || !bytes.Equal(got, want) {
			log.Debugw("stale output", logger.FieldFile, job.Source, logger.FieldOutput, job.Output)
			stale = append(stale, job)
		}
	}
	return stale, nil
}

// ensureDir creates dir if it is absent.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return errors.Wrapf(ErrNotDirectory, "%s", dir)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return errors.Wrap(err, "output path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	return nil
}
