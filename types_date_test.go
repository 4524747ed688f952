package assetbloc

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO format, with lenient single digits.
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative day offsets, the sign is mandatory for non-zero.
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"0d", today, false},
		{"-0d", today, false},
		{"1d", Date{}, true},
		{"2025-2-30", Date{}, true},
	}

	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDate(%q) succeeded, want an error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.June, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2025-06-01"` {
		t.Errorf("Marshal() = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"-1d"`), &back); err == nil {
		t.Error("relative dates are not valid in data files")
	}
}
