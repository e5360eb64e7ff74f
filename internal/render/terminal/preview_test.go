package terminal

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h, scale  int
		lines, width int
	}{
		{"8x8", 8, 8, 1, 4, 8},
		{"odd height", 5, 3, 1, 2, 5},
		{"scaled", 8, 8, 2, 8, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))
			out := Render(img, Options{Scale: tc.scale})
			lines := strings.Split(out, "\n")
			if len(lines) != tc.lines {
				t.Fatalf("expected %d lines, got %d", tc.lines, len(lines))
			}
			for i, line := range lines {
				if got := lipgloss.Width(line); got != tc.width {
					t.Errorf("line %d width = %d, expected %d", i, got, tc.width)
				}
				if got := strings.Count(line, halfBlock); got != tc.width {
					t.Errorf("line %d has %d half blocks, expected %d", i, got, tc.width)
				}
			}
		})
	}
}

func TestRenderRow(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 8, 8))
	b := image.NewRGBA(image.Rect(0, 0, 8, 8))

	out := RenderRow([]image.Image{a, b}, Options{Gap: 2, Scale: 1})
	if got := lipgloss.Height(out); got != 4 {
		t.Errorf("row height = %d, expected 4", got)
	}
	if got := lipgloss.Width(out); got != 18 {
		t.Errorf("row width = %d, expected 18", got)
	}

	if RenderRow(nil, DefaultOptions()) != "" {
		t.Error("expected empty output for no images")
	}
}

func TestOver(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{200, 0, 0, 255}

	tests := []struct {
		name     string
		src      color.RGBA
		expected color.RGBA
	}{
		{"opaque", red, red},
		{"transparent", color.RGBA{}, white},
		{"half", color.RGBA{100, 0, 0, 128}, color.RGBA{227, 127, 127, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := over(tc.src, white); got != tc.expected {
				t.Errorf("over(%v) = %v, expected %v", tc.src, got, tc.expected)
			}
		})
	}
}
