package numerator

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	period := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  Config
		num  int64
		want string
	}{
		{
			name: "default format",
			cfg:  DefaultConfig("ORD"),
			num:  1,
			want: "ORD-2026-00001",
		},
		{
			name: "large sequence grows past pad width",
			cfg:  DefaultConfig("ORD"),
			num:  123456,
			want: "ORD-2026-123456",
		},
		{
			name: "without year",
			cfg:  Config{Prefix: "INV", PadWidth: 3},
			num:  42,
			want: "INV-042",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, tt.cfg)
			got := s.format(period, tt.num)
			if got != tt.want {
				t.Errorf("format mismatch\nwant: %s\ngot:  %s", tt.want, got)
			}
		})
	}
}

func TestFormat_DefaultPadWidth(t *testing.T) {
	s := New(nil, Config{Prefix: "ORD", IncludeYear: true})
	got := s.format(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 7)
	if got != "ORD-2026-00007" {
		t.Errorf("expected five-wide pad by default, got %s", got)
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		formatted string
		want      int64
	}{
		{"ORD-2026-00042", 42},
		{"INV-00007", 7},
		{"garbage", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := ParseSequence(tt.formatted); got != tt.want {
			t.Errorf("ParseSequence(%q) = %d, want %d", tt.formatted, got, tt.want)
		}
	}
}
