package format_test

import (
	"strings"
	"testing"
	"time"

	"aoc2022/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Day", "Title", "Parts")
	tb.Row("day01", "Calorie Counting", 2)
	tb.Row("day06", "Tuning Trouble", 2)
	out := tb.String()

	for _, want := range []string{"Calorie Counting", "day06"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	// StyleLight draws box characters.
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Day", "Status")
	tb.Row("day01", "ok")
	tb.Row("day02", "MISMATCH")
	tb.Footer("PASSED", "1/2")
	out := tb.String()

	if !strings.Contains(out, "| Day") {
		t.Errorf("expected markdown header with '| Day':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
	if !strings.Contains(out, "1/2") {
		t.Errorf("expected footer value in output:\n%s", out)
	}
}

func TestAlignRight(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Part", "Answer", "Time")
	tb.Row("1", 24000, "1.0ms")
	tb.Row("2", 5, "12.3ms")
	tb.AlignRight(2)
	tb.AlignRight(3)
	out := tb.String()
	// Right-aligned cells pad on the left, so the short answer sits under
	// the last digit of the long one.
	if !strings.Contains(out, "│      5 │") || !strings.Contains(out, "│  1.0ms │") {
		t.Errorf("expected right-aligned numbers and timings:\n%s", out)
	}
}

func TestWriteTo(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Day")
	tb.Row("day01")
	var buf strings.Builder
	n, err := tb.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() || !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("WriteTo wrote %d bytes, buffer %q", n, buf.String())
	}
	if !strings.Contains(buf.String(), "day01") {
		t.Errorf("missing row:\n%s", buf.String())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    format.Mode
		wantErr bool
	}{
		{"", format.ASCII, false},
		{"ascii", format.ASCII, false},
		{"Markdown", format.Markdown, false},
		{"md", format.Markdown, false},
		{"html", format.ASCII, true},
	}
	for _, tc := range tests {
		got, err := format.ParseMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseMode(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestFmtDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0µs"},
		{850 * time.Microsecond, "850µs"},
		{12300 * time.Microsecond, "12.3ms"},
		{1200 * time.Millisecond, "1.20s"},
	}
	for _, tc := range tests {
		if got := format.FmtDuration(tc.in); got != tc.want {
			t.Errorf("FmtDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range tests {
		if got := format.Truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}
