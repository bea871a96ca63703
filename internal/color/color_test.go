package color

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewRGBNormalization(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    [3]float64
	}{
		{"byte range", 255, 0, 51, [3]float64{1, 0, 0.2}},
		{"unit range kept", 1, 0.5, 0, [3]float64{1, 0.5, 0}},
		{"white in unit range", 1, 1, 1, [3]float64{1, 1, 1}},
		{"L1 exactly 3 kept", 3, 0, 0, [3]float64{3, 0, 0}},
		{"just above threshold scaled", 3.06, 0, 0, [3]float64{0.012, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRGB(tt.r, tt.g, tt.b)
			if !near(c.R(), tt.want[0]) || !near(c.G(), tt.want[1]) || !near(c.B(), tt.want[2]) {
				t.Errorf("NewRGB(%v,%v,%v) = (%v,%v,%v), want %v",
					tt.r, tt.g, tt.b, c.R(), c.G(), c.B(), tt.want)
			}
		})
	}
}

func TestNewRGBANormalization(t *testing.T) {
	c := NewRGBA(255, 255, 0, 255)
	if !near(c.R(), 1) || !near(c.B(), 0) || !near(c.A(), 1) {
		t.Errorf("NewRGBA bytes = %v", c)
	}

	// L1 = 4 stays in unit range.
	u := NewRGBA(1, 1, 1, 1)
	if !near(u.A(), 1) {
		t.Errorf("NewRGBA(1,1,1,1).A() = %v, want 1", u.A())
	}
}

func TestBytesAndHex(t *testing.T) {
	c := NewRGBA(255, 128, 0, 64)
	r, g, b, a := c.Bytes()
	if r != 255 || g != 128 || b != 0 || a != 64 {
		t.Errorf("Bytes() = (%d,%d,%d,%d)", r, g, b, a)
	}
	if c.Hex() != "#ff800040" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if c.RGB().Hex() != "#ff8000" {
		t.Errorf("RGB().Hex() = %q", c.RGB().Hex())
	}

	back := FromBytes(r, g, b, a)
	if back.Hex() != c.Hex() {
		t.Errorf("FromBytes round trip = %q, want %q", back.Hex(), c.Hex())
	}
	if o := c.RGB().Opaque(); !near(o.A(), 1) {
		t.Errorf("Opaque().A() = %v", o.A())
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ff0000", "#ff0000ff", false},
		{"#0f0", "#00ff00ff", false},
		{"#11223380", "#11223380", false},
		{"ff0000", "", true},
		{"#zzzzzz", "", true},
		{"#112233zz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && c.String() != tt.want {
				t.Errorf("ParseHex(%q) = %s, want %s", tt.in, c, tt.want)
			}
		})
	}
}
