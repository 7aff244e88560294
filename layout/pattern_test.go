package layout

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Philipp01105/memsink/core"
)

func testEvent(level core.Level, msg string) *core.Event {
	return core.NewEventAt("test.logger", time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), level, msg, "goroutine-7")
}

func TestNewPatternLayout_RejectsBlank(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPatternLayout(tt.pattern); !errors.Is(err, ErrEmptyPattern) {
				t.Errorf("NewPatternLayout(%q) error = %v, want ErrEmptyPattern", tt.pattern, err)
			}
		})
	}
}

func TestSetPattern_KeepsOldOnError(t *testing.T) {
	l, err := NewPatternLayout("$m")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.SetPattern("  "); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("SetPattern blank error = %v, want ErrEmptyPattern", err)
	}
	if got := l.Pattern(); got != "$m" {
		t.Errorf("Pattern() = %q after failed set, want %q", got, "$m")
	}
}

func TestFormat_Placeholders(t *testing.T) {
	ev := testEvent(core.InfoLevel, "hello world")
	date := ev.Time.Format(dateFormat)

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"logger", "$c", "test.logger"},
		{"message", "$m", "hello world"},
		{"level", "$p", "INFO"},
		{"routine", "$t", "goroutine-7"},
		{"date", "$d", date},
		{"separator", "x$n", "x" + LineSeparator},
		{"braced", "${p}/${m}", "INFO/hello world"},
		{"combined", "[$p] $c: $m", "[INFO] test.logger: hello world"},
		{"adjacent text", "$p$p!", "INFOINFO!"},
		{"unrecognized passes through", "$x $m", "$x hello world"},
		{"lone dollar", "cost: $", "cost: $"},
		{"unterminated brace", "${m", "${m"},
		{"braced unknown", "${z}", "${z}"},
	}

	l, err := NewPatternLayout("$m")
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.SetPattern(tt.pattern); err != nil {
				t.Fatal(err)
			}
			if got := l.Format(ev); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_EmptyMessageCollapses(t *testing.T) {
	l, err := NewPatternLayout("$p: $m")
	if err != nil {
		t.Fatal(err)
	}
	got := l.Format(testEvent(core.InfoLevel, ""))
	if trimmed := strings.TrimSpace(got); trimmed != "INFO:" {
		t.Errorf("trimmed Format() = %q, want %q", trimmed, "INFO:")
	}
}

func TestFormat_SpecialCharactersVerbatim(t *testing.T) {
	l, err := NewPatternLayout("$m")
	if err != nil {
		t.Fatal(err)
	}
	msg := "line1\nline2\ttabbed\\back"
	if got := l.Format(testEvent(core.DebugLevel, msg)); got != msg {
		t.Errorf("Format() = %q, want %q", got, msg)
	}
}

func TestFormat_EmptyFieldsRenderEmpty(t *testing.T) {
	l, err := NewPatternLayout("$c|$m|$t")
	if err != nil {
		t.Fatal(err)
	}
	ev := &core.Event{Time: time.Now(), Level: core.WarnLevel}
	if got := l.Format(ev); got != "||" {
		t.Errorf("Format() = %q, want %q", got, "||")
	}
}

func TestFormat_NilEvent(t *testing.T) {
	l := NewDefaultPatternLayout()
	if got := l.Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestDefaultPattern(t *testing.T) {
	l := NewDefaultPatternLayout()
	if l.Pattern() != DefaultPattern {
		t.Fatalf("Pattern() = %q, want %q", l.Pattern(), DefaultPattern)
	}

	ev := testEvent(core.ErrorLevel, "boom")
	got := l.Format(ev)
	for _, part := range []string{"[ERROR]", "test.logger", "boom", LineSeparator} {
		if !strings.Contains(got, part) {
			t.Errorf("Format() = %q, missing %q", got, part)
		}
	}
}

func TestFallbackFormat(t *testing.T) {
	ev := testEvent(core.WarnLevel, "watch out")
	got := fallbackFormat(ev)

	want := "[WARN] test.logger " + ev.Time.Format(dateFormat) + ": watch out" + LineSeparator
	if got != want {
		t.Errorf("fallbackFormat() = %q, want %q", got, want)
	}
}

func TestFallbackFormat_EmptyLogger(t *testing.T) {
	ev := &core.Event{Time: time.Now(), Level: core.InfoLevel, Message: "m"}
	got := fallbackFormat(ev)
	if strings.Contains(got, "  ") {
		t.Errorf("fallbackFormat() = %q, unexpected double space for empty logger", got)
	}
}

func TestFormat_ConcurrentWithSetPattern(t *testing.T) {
	l, err := NewPatternLayout("$p: $m")
	if err != nil {
		t.Fatal(err)
	}
	ev := testEvent(core.InfoLevel, "msg")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		patterns := []string{"$p: $m", "[$p] $m", "$m only"}
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				if err := l.SetPattern(patterns[i%len(patterns)]); err != nil {
					t.Error(err)
					return
				}
			}
		}
	}()

	valid := map[string]bool{
		"INFO: msg":  true,
		"[INFO] msg": true,
		"msg only":   true,
	}
	for i := 0; i < 1000; i++ {
		if got := l.Format(ev); !valid[got] {
			t.Fatalf("Format() = %q, not any complete pattern's output", got)
		}
	}
	close(stop)
	wg.Wait()
}

func TestSupportedVariables(t *testing.T) {
	help := SupportedVariables()
	for _, v := range []string{"$c", "$d", "$m", "$p", "$t", "$n"} {
		if !strings.Contains(help, v) {
			t.Errorf("SupportedVariables() missing %q", v)
		}
	}
}
