package command

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes argument vectors produced by Parse. In blocking mode it
// waits for the child to exit before returning; otherwise the child runs
// detached and is reaped in the background. No expansion or shell is
// involved: args[0] is resolved on PATH and the rest pass through verbatim.
type Runner struct {
	Blocking bool
}

// Run spawns args as a child process. A nil or empty vector runs nothing.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		slog.Debug("no command bound")
		return nil
	}
	slog.Debug("running command", "argv", strings.Join(args, " "))

	if r.Blocking {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("run %s: %w", args[0], err)
		}
		return nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", args[0], err)
	}
	go func() {
		// Reap so non-blocking children never linger as zombies.
		_ = cmd.Wait()
	}()
	return nil
}
