package msa

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/seqforge/mmseqs-msa/pkg/logger"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

// Runner drives the external mmseqs binary through the alignment pipeline.
// A Runner is safe for concurrent use; every run owns its own work area.
type Runner struct {
	bin     string
	exec    Execer
	log     logger.Logger
	runOpts []model.RunOption
}

// New creates a Runner around the resolved mmseqs binary path.
func New(bin string, opts ...Option) *Runner {
	r := &Runner{
		bin:  bin,
		exec: systemExecer{},
		log:  logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Generate runs the full pipeline for req and returns either the aggregate
// alignment content or its absolute path, per req.ReturnFormat.
//
// Validation failures surface before any external process is spawned. A
// non-zero exit from any stage aborts the run with a *ToolError; later stages
// are never executed and no result is produced. An ephemeral work area is
// removed on every exit path.
func (r *Runner) Generate(ctx context.Context, req Request) (string, error) {
	req.applyDefaults()

	err := req.validate()
	if err != nil {
		return "", err
	}

	wa, err := newWorkArea(&req)
	if err != nil {
		return "", err
	}

	defer wa.cleanup(r.log)

	for _, opt := range r.runOpts {
		err := opt.New()
		if err != nil {
			return "", errors.Wrap(err, "unable to apply run option")
		}
	}

	err = r.runStages(ctx, wa, &req)
	if err != nil {
		return "", err
	}

	count, err := collectFragments(wa.msaDir, wa.outputA3M)
	if err != nil {
		return "", err
	}

	r.log.Info("alignment assembled",
		zap.Int("fragments", count), zap.String("output", wa.outputA3M))

	for _, opt := range r.runOpts {
		err := opt.Finish()
		if err != nil {
			return "", errors.Wrap(err, "unable to finish run option")
		}
	}

	return publish(wa, req.ReturnFormat)
}

// runStages executes the four external stages in order, short-circuiting on
// the first failure.
func (r *Runner) runStages(ctx context.Context, wa *workArea, req *Request) error {
	stages := buildStages(wa, req)
	parent := model.StartStage

	for i, st := range stages {
		info := &model.StageInfo{Name: st.name}

		for _, opt := range r.runOpts {
			err := opt.PrepareStage(parent, info)
			if err != nil {
				return errors.Wrapf(err, "unable to prepare stage %s", st.name)
			}
		}

		r.log.Info("running stage",
			zap.String("stage", st.name),
			zap.Int("step", i+1), zap.Int("of", len(stages)),
			zap.String("bin", r.bin))

		inv, err := r.runStage(ctx, st)
		if err != nil {
			return err
		}

		if inv.ExitCode != 0 {
			return &ToolError{
				Stage:    st.name,
				Args:     append([]string{r.bin}, st.args...),
				Stderr:   inv.Stderr,
				ExitCode: inv.ExitCode,
			}
		}

		r.log.Debug("stage finished",
			zap.String("stage", st.name), zap.Duration("elapsed", inv.Elapsed))

		for _, opt := range r.runOpts {
			err := opt.OnStageDone(info, inv.Elapsed)
			if err != nil {
				return errors.Wrapf(err, "unable to record stage %s", st.name)
			}
		}

		parent = info
	}

	return nil
}

func (r *Runner) runStage(ctx context.Context, st stage) (*Invocation, error) {
	start := time.Now()

	stdout, stderr, exitCode, err := r.exec.Run(ctx, r.bin, st.args)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to run mmseqs %s", st.name)
	}

	return &Invocation{
		Stage:    st.name,
		Args:     st.args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Elapsed:  time.Since(start),
	}, nil
}

// publish returns the aggregate alignment in the requested shape. Content is
// copied out before an ephemeral work area is destroyed.
func publish(wa *workArea, format ReturnFormat) (string, error) {
	if format == ReturnPath {
		abs, err := filepath.Abs(wa.outputA3M)
		if err != nil {
			return "", errors.Wrap(err, "unable to resolve output path")
		}

		return abs, nil
	}

	content, err := os.ReadFile(wa.outputA3M)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", wa.outputA3M)
	}

	return string(content), nil
}
