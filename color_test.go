package ndraw

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{name: "short rgb", hex: "f00", want: Color{255, 0, 0, 255}},
		{name: "short rgba", hex: "0f08", want: Color{0, 255, 0, 136}},
		{name: "long rgb", hex: "0000ff", want: Color{0, 0, 255, 255}},
		{name: "long rgba", hex: "80402010", want: Color{128, 64, 32, 16}},
		{name: "hash prefix", hex: "#ff00ff", want: Color{255, 0, 255, 255}},
		{name: "uppercase", hex: "FF8000", want: Color{255, 128, 0, 255}},
		{name: "invalid length", hex: "abcde", want: Color{0, 0, 0, 255}},
		{name: "empty", hex: "", want: Color{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	tests := []Color{
		Black, White, Red, Green, Blue, Transparent,
		{R: 12, G: 34, B: 56, A: 255},
	}

	for _, c := range tests {
		if got := FromColor(c.NRGBA()); got != c {
			t.Errorf("FromColor(NRGBA()) = %+v, want %+v", got, c)
		}
	}
}

func TestFromColorStandard(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	want := Color{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("FromColor() = %+v, want %+v", got, want)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{name: "start", t: 0, want: Black},
		{name: "end", t: 1, want: White},
		{name: "clamped low", t: -3, want: Black},
		{name: "clamped high", t: 7, want: White},
		{name: "midpoint", t: 0.5, want: Color{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Black.Lerp(White, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestCommonColors(t *testing.T) {
	if Red != (Color{255, 0, 0, 255}) {
		t.Errorf("Red = %+v", Red)
	}
	if Transparent.A != 0 {
		t.Errorf("Transparent.A = %d, want 0", Transparent.A)
	}
	if RGB(1, 2, 3).A != 255 {
		t.Errorf("RGB() alpha = %d, want 255", RGB(1, 2, 3).A)
	}
}
