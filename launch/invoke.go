package launch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
)

// Invoker starts the external trainer and reports its exit status. It does
// no retries and no error translation: a trainer that exits non-zero is
// reported as-is, and a missing interpreter fails immediately and visibly.
type Invoker struct {
	Log zerolog.Logger

	// Stdout and Stderr receive the trainer's output streams.
	Stdout io.Writer
	Stderr io.Writer

	// Progress enables a step progress bar driven by "step <n>" lines on
	// the trainer's stdout. Purely cosmetic; trainers that never print
	// step lines just stream through.
	Progress bool
}

// NewInvoker returns an Invoker wired to the launcher's own streams.
func NewInvoker(log zerolog.Logger) *Invoker {
	return &Invoker{
		Log:    log,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var stepLine = regexp.MustCompile(`^step\s+(\d+)\b`)

// Run launches the trainer once and returns its exit code. A non-zero
// trainer exit is not an error here; failing to start the process is.
func (inv *Invoker) Run(ctx context.Context, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return -1, err
	}

	cmd := exec.CommandContext(ctx, cfg.Python, append([]string{cfg.Trainer}, cfg.Argv()...)...)
	cmd.Stderr = inv.Stderr

	inv.Log.Info().
		Str("python", cfg.Python).
		Str("trainer", cfg.Trainer).
		Int("datasets", len(cfg.DatasetPaths)).
		Msg("launching trainer")

	start := time.Now()

	var err error
	if inv.Progress {
		err = inv.runWithProgress(cmd, cfg.TotalSteps)
	} else {
		cmd.Stdout = inv.Stdout
		err = cmd.Run()
	}

	exit := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return -1, fmt.Errorf("starting trainer: %w", err)
		}
		exit = exitErr.ExitCode()
	}

	inv.Log.Info().
		Int("exit", exit).
		Dur("elapsed", time.Since(start)).
		Msg("trainer finished")

	return exit, nil
}

// runWithProgress consumes the trainer's stdout line by line, feeding step
// reports into the bar and passing everything else through.
func (inv *Invoker) runWithProgress(cmd *exec.Cmd, totalSteps int) error {
	out, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	bar := pb.New(totalSteps)
	bar.SetWriter(inv.Stderr)
	bar.Start()

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if m := stepLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if n, perr := strconv.Atoi(m[1]); perr == nil {
				bar.SetCurrent(int64(n))
				continue
			}
		}
		fmt.Fprintln(inv.Stdout, line)
	}

	bar.Finish()

	return cmd.Wait()
}
