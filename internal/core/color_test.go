package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"", ColorDefault, false},
		{"yellow", ColorYellow, false},
		{"  Bright_Green ", ColorBrightGreen, false},
		{"gray", ColorGray, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), parsed, err, c)
		}
	}
}
