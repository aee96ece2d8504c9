// stack.go — opt-in stack capture.
//
// Stacks are never captured implicitly: constructors stay cheap, and
// callers mark the boundaries worth debugging with WithStack. Frames are
// resolved through runtime.CallersFrames so inlined calls expand correctly.
package xgxopaque

import (
	"runtime"
)

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or recv.method)
}

// Stack is a slice of Frames from the most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture cost on exceptional paths.
const defaultMaxDepth = 64

func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack records up to maxDepth frames, skipping 'skip' frames beyond
// the internal helpers. The +3 accounts for runtime.Callers itself,
// captureStack, and captureStackDefault, so the first recorded frame lands
// at (or near) the user-visible WithStack call site.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
