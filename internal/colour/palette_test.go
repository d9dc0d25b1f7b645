package colour

import (
	"image/color"
	"testing"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		name   string
		colour color.Color
		want   RGB
	}{
		{
			name:   "red",
			colour: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:   RGB{R: 255, G: 0, B: 0},
		},
		{
			name:   "green",
			colour: color.RGBA{R: 0, G: 255, B: 0, A: 255},
			want:   RGB{R: 0, G: 255, B: 0},
		},
		{
			name:   "blue",
			colour: color.RGBA{R: 0, G: 0, B: 255, A: 255},
			want:   RGB{R: 0, G: 0, B: 255},
		},
		{
			name:   "white",
			colour: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want:   RGB{R: 255, G: 255, B: 255},
		},
		{
			name:   "black",
			colour: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			want:   RGB{R: 0, G: 0, B: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.colour)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
		{
			name: "mixed is lowercase",
			rgb:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
			want: "#1a2b3c",
		},
		{
			name: "single digit channels are padded",
			rgb:  RGB{R: 1, G: 2, B: 3},
			want: "#010203",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	})

	if palette.Len() != 2 {
		t.Errorf("Len() = %d, want 2", palette.Len())
	}

	hex := palette.ToHex()
	want := []string{"#ff0000", "#00ff00"}
	for i := range want {
		if hex[i] != want[i] {
			t.Errorf("ToHex()[%d] = %q, want %q", i, hex[i], want[i])
		}
	}
}
