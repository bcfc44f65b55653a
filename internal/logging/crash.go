package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a recovered panic with its stack and system info, then
// re-panics so the process still fails loudly. Use it with defer:
//
//	defer func() { logging.LogPanic(ctx, recover()) }()
//
// A nil value is a no-op.
func LogPanic(ctx context.Context, r any) {
	if r == nil {
		return
	}
	log := FromContext(ctx)

	log.Error().
		Interface("panic", r).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Msg("PANIC")

	log.Error().Str("stack", string(debug.Stack())).Msg("stack trace")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Debug().
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Msg("memory at panic")

	panic(r)
}
