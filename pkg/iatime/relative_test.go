package iatime

import (
	"testing"
	"time"
)

func TestCompactPhrase(t *testing.T) {
	tests := []struct {
		phrase  string
		want    string
		wantErr bool
	}{
		{"0 seconds", "now", false},
		{"in 3 days", "3D", false},
		{"2 hours ago", "-2H", false},
		{"in 1 minute", "1m", false},
		{"in 4 weeks", "4W", false},
		{"1 month ago", "-1M", false},
		{"in 10 years", "10Y", false},
		{"in 5 seconds", "5", false},
		{"5 seconds ago", "-5", false},
		{"yesterday", "", true},
		{"in a week", "", true},
		{"in 3 days ago", "", true},
		{"3 days later", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := CompactPhrase(tt.phrase)
			if tt.wantErr {
				if !IsUnparsablePhrase(err) {
					t.Errorf("CompactPhrase(%q) error = %v, want UnparsablePhrase", tt.phrase, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompactPhrase(%q) error: %v", tt.phrase, err)
			}
			if got != tt.want {
				t.Errorf("CompactPhrase(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestRelativeDescription(t *testing.T) {
	base := TimeFromTicks(1000)

	tests := []struct {
		name   string
		from   time.Time
		to     time.Time
		format Format
		want   string
	}{
		{"same instant", base, base, FormatNumber, "now"},
		{"same instant text", base, base, FormatText, "0 seconds"},
		{"three days", base, base.AddDate(0, 0, 3), FormatNumber, "3D"},
		{"reversed order", base.AddDate(0, 0, 3), base, FormatNumber, "3D"},
		{"text", base, base.Add(2 * time.Hour), FormatText, "in 2 hours"},
		{"minutes", base, base.Add(10 * time.Minute), FormatNumber, "10m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeDescription(tt.from, tt.to, tt.format)
			if err != nil {
				t.Fatalf("RelativeDescription() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativeDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeToNow(t *testing.T) {
	now := TimeFromTicks(1000)
	d := NewDescriber(WithClock(func() time.Time { return now }))

	tests := []struct {
		name   string
		ticks  int64
		format Format
		want   string
	}{
		{"two hours ago", 1000 - 24, FormatNumber, "-2H"},
		{"in three days", 1000 + 3*288, FormatNumber, "3D"},
		{"now", 1000, FormatNumber, "now"},
		{"text", 1000 - 288, FormatText, "1 day ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.RelativeIATime(tt.ticks, tt.format)
			if err != nil {
				t.Fatalf("RelativeIATime() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativeIATime(%d) = %q, want %q", tt.ticks, got, tt.want)
			}
		})
	}

	got, err := d.RelativeUnixTime(UnixFromTicks(1000+2016), FormatNumber)
	if err != nil || got != "1W" {
		t.Errorf("RelativeUnixTime() = %q, %v", got, err)
	}
}

func TestTimeUntil(t *testing.T) {
	origin := FromTicks(0)
	got, err := origin.TimeUntil(Origin.AddDate(0, 0, 3), FormatNumber)
	if err != nil || got != "3D" {
		t.Errorf("TimeUntil(+3 days) = %q, %v", got, err)
	}
	got, err = origin.TimeUntil(Origin.Add(-time.Hour), FormatText)
	if err != nil || got != "1 hour ago" {
		t.Errorf("TimeUntil(-1 hour) = %q, %v", got, err)
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		a, b Instant
		want bool
	}{
		{FromTicks(0), FromTicks(287), true},
		{FromTicks(0), FromTicks(288), false},
		{FromTicks(-1), FromTicks(0), false},
		{FromTicks(-288), FromTicks(-1), true},
	}

	for _, tt := range tests {
		if got := IsSameDay(tt.a, tt.b); got != tt.want {
			t.Errorf("IsSameDay(%d, %d) = %v, want %v", tt.a.Ticks(), tt.b.Ticks(), got, tt.want)
		}
		if IsSameDay(tt.a, tt.b) != IsSameDay(tt.b, tt.a) {
			t.Errorf("IsSameDay(%d, %d) is not symmetric", tt.a.Ticks(), tt.b.Ticks())
		}
	}
}

func TestTimeBetween(t *testing.T) {
	a := FromTicks(0)
	b := FromTicks(3 * 288)

	ab, err := TimeBetween(a, b, FormatNumber)
	if err != nil {
		t.Fatalf("TimeBetween() error: %v", err)
	}
	ba, err := TimeBetween(b, a, FormatNumber)
	if err != nil {
		t.Fatalf("TimeBetween() error: %v", err)
	}
	if ab != "3D" || ba != ab {
		t.Errorf("TimeBetween() = %q / %q, want 3D for both", ab, ba)
	}
}
