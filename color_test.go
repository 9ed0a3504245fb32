package gocuboid

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"Red", Red},
		{"R", Red},
		{"r", Red},
		{" white ", White},
		{"O", Orange},
		{"YELLOW", Yellow},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, s := range []string{"", "purple", "X"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", s, err)
		}
	}
}

func TestColorNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Colors() {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
		if seen[c.String()] {
			t.Errorf("symbol %s used twice", c)
		}
		seen[c.String()] = true
		if got, _ := ParseColor(c.Name()); got != c {
			t.Errorf("ParseColor(%q) = %v", c.Name(), got)
		}
	}
	if Color(6).Valid() {
		t.Error("Color(6) should be invalid")
	}
}

func TestParseFaceID(t *testing.T) {
	for _, f := range Faces() {
		if got, ok := ParseFaceID(f.String()); !ok || got != f {
			t.Errorf("ParseFaceID(%q) = %s, %v", f.String(), got, ok)
		}
		if got, ok := ParseFaceID(f.Name()); !ok || got != f {
			t.Errorf("ParseFaceID(%q) = %s, %v", f.Name(), got, ok)
		}
	}
	if _, ok := ParseFaceID("X"); ok {
		t.Error("ParseFaceID(X) should fail")
	}
}
