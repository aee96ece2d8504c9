// opaque-demo exercises the library end to end: a multi-part payload is
// emitted through a FailWriter onto a sink that rejects a configurable
// part, lower layers wrap and return, and the boundary classifies the
// failure for retry and reports the chain exactly once.
//
//	opaque-demo --parts 5 --fail-at 3 --retries 2
//	opaque-demo --fail-at 3 --sticky          # retries exhausted, one report
//	opaque-demo --fail-at 0                   # clean run
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xgxopaque "github.com/xgx-io/xgx-opaque"
	"github.com/xgx-io/xgx-opaque/opaquelog"
)

var (
	demoParts   int
	demoFailAt  int
	demoRetries int
	demoSticky  bool
	demoJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "opaque-demo",
	Short: "demonstrate capability classification and fail-fast writing",
	Long: "opaque-demo emits a multi-part payload through a fail-fast writer " +
		"onto a deliberately flaky sink. Failures are classified by capability " +
		"(never by concrete type) to drive the retry decision, and the final " +
		"outcome is reported as a single chain at the boundary.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.Flags().IntVar(&demoParts, "parts", 5, "parts in the emitted payload")
	rootCmd.Flags().IntVar(&demoFailAt, "fail-at", 3, "1-based sink write that fails (0 = healthy sink)")
	rootCmd.Flags().IntVar(&demoRetries, "retries", 2, "extra attempts allowed for retryable failures")
	rootCmd.Flags().BoolVar(&demoSticky, "sticky", false, "fault persists across attempts instead of clearing")
	rootCmd.Flags().BoolVar(&demoJSON, "json", false, "log JSON instead of console output")
}

// flakySink rejects one scripted write with a temporary, capability-flagged
// error. Everything else passes through to out.
type flakySink struct {
	out    io.Writer
	failAt int // 1-based write index to reject; 0 = healthy
	calls  int
}

func (s *flakySink) Write(p []byte) (int, error) {
	s.calls++
	if s.failAt > 0 && s.calls == s.failAt {
		return 0, xgxopaque.Temporary("sink saturated", "call", s.calls)
	}
	return s.out.Write(p)
}

// emit writes the whole payload as one batch. Per-part results are ignored;
// the single Err check at the end decides the batch, and the failure comes
// back wrapped with this layer's context — no logging here.
func emit(sink io.Writer, parts int, opID string) error {
	fw := xgxopaque.NewFailWriter(sink)
	fw.WriteString(fmt.Sprintf("# op %s\n", opID))
	for i := 1; i <= parts; i++ {
		fw.WriteString(fmt.Sprintf("part %d/%d\n", i, parts))
	}
	if err := fw.Err(); err != nil {
		return xgxopaque.Wrap(err, "emit payload",
			"op_id", opID, "parts", parts, "written", fw.Written())
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	var out io.Writer = os.Stderr
	if !demoJSON {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	logger := zerolog.New(out).With().Timestamp().Logger()

	opID := uuid.NewString()
	logger.Info().Str("op_id", opID).Int("parts", demoParts).Msg("starting emit")

	var err error
	for attempt := 1; ; attempt++ {
		sink := &flakySink{out: os.Stdout, failAt: demoFailAt}
		if attempt > 1 && !demoSticky {
			sink.failAt = 0 // fault cleared between attempts
		}

		err = emit(sink, demoParts, opID)
		if err == nil {
			logger.Info().Str("op_id", opID).Int("attempt", attempt).Msg("payload emitted")
			return nil
		}
		if attempt > demoRetries || !xgxopaque.IsRetryable(err) {
			break
		}
		// Progress note on a failure being handled by retry; the chain is
		// rendered only if the operation ultimately fails.
		opaquelog.Event(logger.Warn(), err).
			Str("op_id", opID).Int("attempt", attempt).Msg("retrying")
	}

	// The boundary: the one place the chain is reported.
	opaquelog.Report(logger, "emit failed", err)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
