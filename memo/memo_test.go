package memo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestCacheDo(t *testing.T) {
	cache := NewCache()
	calls := 0
	fn := func() (any, error) {
		calls++
		return calls, nil
	}

	for i := 0; i < 3; i++ {
		v, err := cache.Do("k", fn)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		if v.(int) != 1 {
			t.Errorf("call %d: got %v, want 1", i, v)
		}
	}
	if calls != 1 {
		t.Errorf("underlying function called %d times, want 1", calls)
	}

	// A distinct key invokes the function again.
	v, _ := cache.Do("other", fn)
	if v.(int) != 2 {
		t.Errorf("got %v, want 2", v)
	}
	if cache.Len() != 2 {
		t.Errorf("Len = %d, want 2", cache.Len())
	}
}

func TestCacheDoUncachableKey(t *testing.T) {
	cache := NewCache()
	calls := 0
	fn := func() (any, error) {
		calls++
		return calls, nil
	}

	key := []string{"not", "hashable"}
	for i := 1; i <= 3; i++ {
		v, err := cache.Do(key, fn)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		if v.(int) != i {
			t.Errorf("call %d: got %v, want %d", i, v, i)
		}
	}
	if calls != 3 {
		t.Errorf("underlying function called %d times, want 3", calls)
	}
	if cache.Len() != 0 {
		t.Errorf("uncachable key stored an entry, Len = %d", cache.Len())
	}
}

func TestCacheDoError(t *testing.T) {
	cache := NewCache()
	calls := 0
	_, err := cache.Do("k", func() (any, error) {
		calls++
		return nil, errFake
	})
	if err == nil {
		t.Fatal("expected error")
	}
	// Errors are not cached: the next call runs again.
	_, _ = cache.Do("k", func() (any, error) {
		calls++
		return "ok", nil
	})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake" }

func TestFunc1(t *testing.T) {
	calls := 0
	double := Func1(func(n int) int {
		calls++
		return n * 2
	})

	if got := double(21); got != 42 {
		t.Errorf("double(21) = %d", got)
	}
	if got := double(21); got != 42 {
		t.Errorf("double(21) = %d", got)
	}
	double(3)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestTrackLogsNameAndSeconds(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	Track(time.Now(), "testFunc")

	out := buf.String()
	if !strings.Contains(out, "testFunc") {
		t.Errorf("log output missing function name: %q", out)
	}
	if !strings.Contains(out, "seconds=") {
		t.Errorf("log output missing seconds: %q", out)
	}
}

func TestTimedPassesThroughResult(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	fn := Timed("answer", func() int { return 42 })
	if got := fn(); got != 42 {
		t.Errorf("Timed result = %d, want 42", got)
	}
	if !strings.Contains(buf.String(), "answer") {
		t.Errorf("log output missing name: %q", buf.String())
	}
}
