package listengine

import (
	"testing"

	"newsboard-api/core/domain"
)

func TestGrowWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"first growth", 25, 50},
		{"second growth", 50, 75},
		{"reaches ceiling", 75, 100},
		{"at ceiling stays", 100, 100},
		{"clamps partial step", 90, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := growWindow(tt.current, 25, 100); got != tt.want {
				t.Errorf("growWindow(%d) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestVisiblePrefix(t *testing.T) {
	items := make([]domain.NewsItem, 15)

	if got := visiblePrefix(items, 10); len(got) != 10 {
		t.Errorf("visiblePrefix returned %d items, want 10", len(got))
	}
	if got := visiblePrefix(items, 25); len(got) != 15 {
		t.Errorf("visiblePrefix returned %d items, want 15 (all items)", len(got))
	}
	if got := visiblePrefix(items, -1); len(got) != 0 {
		t.Errorf("visiblePrefix returned %d items, want 0 for negative window", len(got))
	}
	if got := visiblePrefix(nil, 25); len(got) != 0 {
		t.Errorf("visiblePrefix returned %d items, want 0 for empty input", len(got))
	}
}
