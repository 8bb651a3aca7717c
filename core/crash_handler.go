package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	finalizerMu sync.Mutex
	finalizer   func()
)

// SetCrashFinalizer registers the function restoring the terminal before a crash report
// Keeps core independent of the screen implementation
func SetCrashFinalizer(fn func()) {
	finalizerMu.Lock()
	finalizer = fn
	finalizerMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	finalizerMu.Lock()
	fn := finalizer
	finalizerMu.Unlock()
	if fn != nil {
		fn()
	}

	os.Stdout.Sync()

	// Raw mode may still be active if the finalizer failed, so use \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
