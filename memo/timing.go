package memo

import (
	"fmt"
	"log/slog"
	"time"
)

// Track logs the elapsed wall-clock time since start, attributed to name.
// Intended for use with defer:
//
//	defer memo.Track(time.Now(), "loadLexicon")
func Track(start time.Time, name string) {
	elapsed := time.Since(start).Seconds()
	slog.Info("completed execution",
		"func", name,
		"seconds", fmt.Sprintf("%.2f", elapsed))
}

// Timed wraps fn so that every call logs its name and elapsed wall-clock
// seconds. The return value passes through unchanged.
func Timed[R any](name string, fn func() R) func() R {
	return func() R {
		defer Track(time.Now(), name)
		return fn()
	}
}
