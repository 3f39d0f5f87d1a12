package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/andy/dualtimer/internal/domain"
	"github.com/andy/dualtimer/internal/service"
	"github.com/spf13/cobra"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Run a 25 minute countdown in the terminal",
	Long:  `Run the countdown without the TUI. Exits once it reaches zero and resets, or on Ctrl+C.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, domain.TimerModeCountdown)
	},
}

var countupCmd = &cobra.Command{
	Use:   "countup",
	Short: "Run a count-up timer in the terminal",
	Long:  `Run the count-up timer without the TUI. It holds at 24 hours; stop it with Ctrl+C.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, domain.TimerModeCountUp)
	},
}

func runHeadless(cmd *cobra.Command, mode domain.TimerMode) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final := runTimer(ctx, appInstance.TimerService, mode, cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout())

	if final.State == domain.TimerStateStopped && mode == domain.TimerModeCountdown {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Countdown finished")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Stopped at %s\n", final.Display())
	}
	return nil
}

// runTimer starts the timer in mode and redraws one status line per
// snapshot until ctx is done or a countdown completes. It returns the last
// snapshot seen.
func runTimer(ctx context.Context, timer service.TimerService, mode domain.TimerMode, out io.Writer) domain.TimerSnapshot {
	var (
		mu   sync.Mutex
		last domain.TimerSnapshot
		once sync.Once
	)
	finished := make(chan struct{})

	timer.SwitchMode(mode)
	unsubscribe := timer.Subscribe(func(s domain.TimerSnapshot) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "\r%s  %-8s", s.Display(), s.State.Label())
		// a countdown returning to Stopped after running has auto-reset
		if s.Mode == domain.TimerModeCountdown && s.State == domain.TimerStateStopped &&
			last.State == domain.TimerStateRunning {
			once.Do(func() { close(finished) })
		}
		last = s
	})
	defer unsubscribe()

	timer.Start()

	select {
	case <-ctx.Done():
		timer.Stop()
	case <-finished:
	}

	mu.Lock()
	defer mu.Unlock()
	return last
}
