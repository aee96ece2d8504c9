// Package opaquelog renders xgx-opaque error chains into zerolog events.
//
// It exists so the core stays logging-free: intermediate layers wrap and
// return, and the one boundary that finally handles an error calls Report
// exactly once. Calling Report from more than one layer reports a single
// failure as several, which is precisely what the chain model is there to
// prevent.
package opaquelog

import (
	"github.com/rs/zerolog"

	xgxopaque "github.com/xgx-io/xgx-opaque"
)

// Report logs err at error level with the full chain, capability flags, and
// merged context fields. msg names the operation that failed at the
// boundary's granularity ("handle request", "flush batch"). nil err is a
// no-op, so callers can report unconditionally at the end of a handler.
func Report(logger zerolog.Logger, msg string, err error) {
	if err == nil {
		return
	}
	Event(logger.Error(), err).Msg(msg)
}

// Event decorates a zerolog event with err's diagnostics and returns it,
// for callers that want to choose the level or add their own fields:
//
//	opaquelog.Event(logger.Warn(), err).Str("op_id", id).Msg("retrying")
func Event(ev *zerolog.Event, err error) *zerolog.Event {
	if err == nil {
		return ev
	}
	caps := xgxopaque.Classify(err)
	ev = ev.
		Str("chain", xgxopaque.FormatChain(err)).
		Bool("timeout", caps.Timeout).
		Bool("temporary", caps.Temporary).
		Bool("retryable", caps.Timeout || caps.Temporary)
	if root := xgxopaque.Root(err); root != nil {
		ev = ev.Str("root", root.Error())
	}
	if ctx := MergedContext(err); len(ctx) > 0 {
		ev = ev.Fields(ctx)
	}
	return ev
}

// MergedContext flattens the structured context of every chain link into
// one map. The outermost link wins on duplicate keys: later wraps describe
// the failure at higher granularity, so their values shadow deeper ones.
func MergedContext(err error) map[string]any {
	var merged map[string]any
	xgxopaque.Walk(err, func(e error) bool {
		c, ok := e.(interface{ Context() map[string]any })
		if !ok {
			return true
		}
		for k, v := range c.Context() {
			if merged == nil {
				merged = make(map[string]any, 4)
			}
			// Pre-order walk: the first (outermost) value stands.
			if _, dup := merged[k]; !dup {
				merged[k] = v
			}
		}
		return true
	})
	return merged
}
