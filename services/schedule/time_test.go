package schedule

import "testing"

func TestToMinutes(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"18:00", 1080},
		{"23:59", 1439},
		{"9:05", 545},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.text)
		if err != nil {
			t.Fatalf("ToMinutes(%q) failed: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("ToMinutes(%q): expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	cases := []string{"", "09", "09:00:00", "24:00", "-1:30", "12:60", "ab:cd", "12:", ":30"}
	for _, text := range cases {
		if _, err := ToMinutes(text); err == nil {
			t.Fatalf("ToMinutes(%q): expected error, got none", text)
		} else if _, ok := err.(*FormatError); !ok {
			t.Fatalf("ToMinutes(%q): expected *FormatError, got %T", text, err)
		}
	}
}

func TestFormatMinutes_RoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		got, err := ToMinutes(FormatMinutes(m))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", m, err)
		}
		if got != m {
			t.Fatalf("round trip of %d: got %d", m, got)
		}
	}
}

func TestToMinutes_RoundTrip(t *testing.T) {
	cases := []string{"00:00", "09:30", "13:05", "23:59"}
	for _, text := range cases {
		m, err := ToMinutes(text)
		if err != nil {
			t.Fatalf("ToMinutes(%q) failed: %v", text, err)
		}
		if got := FormatMinutes(m); got != text {
			t.Fatalf("round trip of %q: got %q", text, got)
		}
	}
}
