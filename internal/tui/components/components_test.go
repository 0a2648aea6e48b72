package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{90, 3, []int{30, 30, 30}},
		{91, 3, []int{31, 30, 30}},
		{92, 3, []int{31, 31, 30}},
		{10, 1, []int{10}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			continue
		}
		sum := 0
		for i, w := range got {
			sum += w
			if w != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
		}
		if tt.n > 0 && sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	// The mouse hitboxes in the app are computed from TabVisualWidth, so the
	// full bar must measure exactly as the sum of tab widths plus separators.
	for active := range Tabs {
		want := 1 // leading space
		for i, tab := range Tabs {
			if i > 0 {
				want += 2
			}
			want += TabVisualWidth(tab, i == active)
		}
		bar := RenderTabBar(active, 0)
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("RenderTabBar(%d) width = %d, want %d", active, got, want)
		}
	}
}

func TestRenderTabBarPadsToWidth(t *testing.T) {
	bar := RenderTabBar(0, 80)
	if got := lipgloss.Width(bar); got != 80 {
		t.Errorf("RenderTabBar width = %d, want 80", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'p', 0},
		{'h', 1},
		{'x', 2},
		{'z', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(30); got != 26 {
		t.Errorf("CardInnerWidth(30) = %d, want 26", got)
	}
}
