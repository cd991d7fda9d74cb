package sketch

import (
	"strings"
	"testing"
)

func TestRoughLine(t *testing.T) {
	markup := roughLine(newRNG(42), 0, 0, 100, 0, "#fff")

	// Double stroke: exactly two path segments
	if n := strings.Count(markup, "<path"); n != 2 {
		t.Errorf("roughLine should emit 2 paths, got %d", n)
	}
	if !strings.Contains(markup, `stroke="#fff"`) {
		t.Errorf("roughLine should carry the stroke color, got: %s", markup)
	}
	if !strings.Contains(markup, `stroke-linecap="round"`) {
		t.Errorf("roughLine should use rounded caps, got: %s", markup)
	}

	// Deterministic for a fixed stream
	if markup != roughLine(newRNG(42), 0, 0, 100, 0, "#fff") {
		t.Error("roughLine should be deterministic for the same seed")
	}
}

func TestRoughRect(t *testing.T) {
	filled := roughRect(newRNG(1), 10, 10, 80, 40, "#aaa", "#bbb")
	outline := roughRect(newRNG(1), 10, 10, 80, 40, "#aaa", "")

	// Fill backdrop present only when a fill color is given
	if n := strings.Count(filled, "<rect"); n != 1 {
		t.Errorf("filled rect should emit 1 backdrop, got %d", n)
	}
	if strings.Contains(outline, "<rect") {
		t.Error("outline rect should not emit a backdrop")
	}
	if !strings.Contains(filled, `rx="8"`) {
		t.Error("backdrop should have rounded corners")
	}
	if !strings.Contains(filled, `opacity="0.1"`) {
		t.Error("backdrop should be translucent")
	}

	// Four edges, two strokes each
	if n := strings.Count(outline, "<path"); n != 8 {
		t.Errorf("rect should emit 8 path segments, got %d", n)
	}
}

func TestRoughCircle(t *testing.T) {
	filled := roughCircle(newRNG(3), 50, 50, 24, "#aaa", "#bbb")
	outline := roughCircle(newRNG(3), 50, 50, 24, "#aaa", "")

	if n := strings.Count(filled, "<circle"); n != 1 {
		t.Errorf("filled circle should emit 1 fill disc, got %d", n)
	}
	if strings.Contains(outline, "<circle") {
		t.Error("outline circle should not emit a fill disc")
	}

	// Two independent sketch passes
	if n := strings.Count(outline, "<polyline"); n != 2 {
		t.Errorf("circle should emit 2 polylines, got %d", n)
	}

	// 18 points per polyline (360/20 steps)
	for _, line := range strings.Split(outline, "\n") {
		if !strings.Contains(line, "<polyline") {
			continue
		}
		points := line[strings.Index(line, `points="`)+len(`points="`):]
		points = points[:strings.Index(points, `"`)]
		if n := len(strings.Fields(points)); n != 18 {
			t.Errorf("polyline should have 18 points, got %d", n)
		}
	}
}

func TestTextEl(t *testing.T) {
	markup := textEl(10, 20, "Header / Title", "#abc")
	if !strings.Contains(markup, ">Header / Title</text>") {
		t.Errorf("textEl should contain the label, got: %s", markup)
	}
	if !strings.Contains(markup, `fill="#abc"`) {
		t.Errorf("textEl should carry the color, got: %s", markup)
	}
}

func TestTextElEscaping(t *testing.T) {
	markup := textEl(0, 0, "<script>alert(1)</script>", "#fff")
	if strings.Contains(markup, "<script>") {
		t.Errorf("textEl must escape angle brackets, got: %s", markup)
	}
	if !strings.Contains(markup, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("textEl should emit entity forms, got: %s", markup)
	}
}
