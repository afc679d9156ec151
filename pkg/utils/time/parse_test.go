package time

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"rfc3339", "2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), true},
		{"rfc3339 offset", "2024-05-01T12:00:00+02:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), true},
		{"rfc1123z", "Wed, 01 May 2024 10:00:00 +0000", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), true},
		{"date only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"zoneless datetime", "2024-05-01 10:30:00", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), true},
		{"padded", "  2024-05-01  ", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"last four-digit year", "9999-12-31T23:59:59Z", time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"offset back into year zero", "0001-01-01T00:30:00+01:00", time.Date(0, 12, 31, 23, 30, 0, 0, time.UTC), true},
		{"offset before year zero", "0000-01-01T00:30:00+01:00", time.Time{}, false},
		{"garbage", "yesterday-ish", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if ok && got.Location() != time.UTC {
				t.Errorf("ParseDate(%q) location = %v, want UTC", tt.input, got.Location())
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	zone := time.FixedZone("EST", -5*3600)
	parsed := time.Date(2024, 5, 1, 5, 0, 0, 0, zone)

	got := ParseOptional(&parsed, "ignored")
	if got == nil || got.Location() != time.UTC || !got.Equal(parsed) {
		t.Errorf("ParseOptional(parsed) = %v, want %v in UTC", got, parsed)
	}

	got = ParseOptional(nil, "2024-05-01T10:00:00Z")
	if got == nil || got.Hour() != 10 {
		t.Errorf("ParseOptional(raw) = %v", got)
	}

	if got := ParseOptional(nil, "not a date"); got != nil {
		t.Errorf("ParseOptional(garbage) = %v, want nil", got)
	}

	zero := time.Time{}
	if got := ParseOptional(&zero, ""); got != nil {
		t.Errorf("ParseOptional(zero) = %v, want nil", got)
	}
}

func TestParseOptional_DropsYearsOutsideFourDigits(t *testing.T) {
	zone := time.FixedZone("EST", -5*3600)
	tests := []struct {
		name   string
		parsed time.Time
		want   bool
	}{
		{"year 10000", time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"rolls past 9999 in UTC", time.Date(9999, 12, 31, 23, 0, 0, 0, zone), false},
		{"negative year", time.Date(-1, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"year zero", time.Date(0, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"year 9999", time.Date(9999, 12, 31, 18, 0, 0, 0, zone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := tt.parsed
			got := ParseOptional(&parsed, "")
			if (got != nil) != tt.want {
				t.Errorf("ParseOptional(%v) = %v, want present=%v", tt.parsed, got, tt.want)
			}
		})
	}
}
