package msa

import (
	"bytes"
	"context"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

// Execer runs one external command to completion with fully captured output.
// The default implementation spawns a real process; tests substitute fakes.
type Execer interface {
	Run(ctx context.Context, bin string, args []string) (stdout, stderr []byte, exitCode int, err error)
}

// systemExecer runs commands through os/exec. Output is captured in full, not
// streamed. The process runs in its own group so a context cancellation can
// kill the whole tree.
type systemExecer struct{}

func (systemExecer) Run(ctx context.Context, bin string, args []string) ([]byte, []byte, int, error) {
	cmd := exec.Command(bin, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	err := cmd.Start()
	if err != nil {
		return nil, nil, -1, errors.Wrapf(err, "unable to start %s", bin)
	}

	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	var waitErr error

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}

		<-done

		return stdout.Bytes(), stderr.Bytes(), -1, errors.Wrap(ctx.Err(), "execution cancelled")
	case waitErr = <-done:
	}

	if waitErr != nil {
		exitErr, ok := waitErr.(*exec.ExitError)
		if !ok {
			return stdout.Bytes(), stderr.Bytes(), -1, errors.Wrapf(waitErr, "unable to run %s", bin)
		}

		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
