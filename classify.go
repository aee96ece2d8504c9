// classify.go — capability classification over cause chains.
//
// Classification is behavior assertion: a chain node participates by
// implementing Timeout() bool or Temporary() bool and returning true, never
// by being a particular concrete type or sentinel. This is the same
// convention net.Error established, so errors from the net package (and any
// third-party error following it) classify here with no adaptation.
//
// Out of scope (by design): retry backoff, budgets, HTTP status mapping.
// Classify answers "what is this"; owners of the call decide what to do.
package xgxopaque

// Behavior-assertion hooks. Unexported: callers go through Classify and the
// predicates, producers set flags at construction.
type timeoutAsserter interface{ Timeout() bool }
type temporaryAsserter interface{ Temporary() bool }

// Classify reports the capability set of err's entire unwrap graph.
//
// A flag is true iff at least one node asserts it (implements the hook and
// returns true). A node returning false does not veto a deeper node
// returning true: flags are sticky across wrapping, so
// Classify(Wrap(e, "ctx")) always equals Classify(e) for flag purposes.
//
// nil, and chains asserting nothing, classify as the zero Caps — a valid
// "no guidance" answer, not an error.
func Classify(err error) Caps {
	var caps Caps
	if err == nil {
		return caps
	}
	Walk(err, func(e error) bool {
		if t, ok := e.(timeoutAsserter); ok && t.Timeout() {
			caps.Timeout = true
		}
		if t, ok := e.(temporaryAsserter); ok && t.Temporary() {
			caps.Temporary = true
		}
		// Stop as soon as both flags are settled.
		return !(caps.Timeout && caps.Temporary)
	})
	return caps
}

// IsTimeout reports whether any node in err's chain asserts Timeout.
func IsTimeout(err error) bool {
	return Classify(err).Timeout
}

// IsTemporary reports whether any node in err's chain asserts Temporary.
func IsTemporary(err error) bool {
	return Classify(err).Temporary
}

// IsRetryable is a tiny, policy-free heuristic: timeouts and temporary
// conditions are worth another attempt, everything else is not. Backoff and
// attempt budgets belong to the caller.
func IsRetryable(err error) bool {
	c := Classify(err)
	return c.Timeout || c.Temporary
}
