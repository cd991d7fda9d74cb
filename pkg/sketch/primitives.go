package sketch

import (
	"fmt"
	"math"
	"strings"
)

// Jitter scales tuned to read as pencil imprecision at wireframe size.
const (
	lineJitter   = 2.2 // endpoint displacement for double-stroke lines
	angleJitter  = 2.0 // circle point angle wobble, degrees
	radiusJitter = 1.5 // circle point radius wobble
)

// roughLine emits two independently jittered stroke segments between the
// endpoints, mimicking a hand-drawn double stroke.
func roughLine(g *rng, x1, y1, x2, y2 float64, stroke string) string {
	segs := make([]string, 0, 2)
	for range 2 {
		jx1 := g.jitter(x1, lineJitter)
		jy1 := g.jitter(y1, lineJitter)
		jx2 := g.jitter(x2, lineJitter)
		jy2 := g.jitter(y2, lineJitter)
		segs = append(segs, fmt.Sprintf(
			`<path d="M %.1f,%.1f L %.1f,%.1f" stroke="%s" stroke-width="1.8" fill="none" stroke-linecap="round" opacity="0.9" />`,
			jx1, jy1, jx2, jy2, stroke))
	}
	return strings.Join(segs, "\n")
}

// roughRect emits a sketchy rectangle: an optional translucent fill backdrop
// with rounded corners, then the four edges as rough lines in the order
// top, right, bottom, left. Pass fill "" for an outline-only rectangle.
func roughRect(g *rng, x, y, w, h float64, stroke, fill string) string {
	var parts []string
	if fill != "" {
		parts = append(parts, fmt.Sprintf(
			`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="0.1" rx="8" />`,
			x, y, w, h, fill))
	}
	parts = append(parts,
		roughLine(g, x, y, x+w, y, stroke),
		roughLine(g, x+w, y, x+w, y+h, stroke),
		roughLine(g, x+w, y+h, x, y+h, stroke),
		roughLine(g, x, y+h, x, y, stroke),
	)
	return strings.Join(parts, "\n")
}

// roughCircle emits a sketchy circle: an optional translucent fill disc, then
// two independent jittered polyline passes approximating the outline with 18
// points at 20-degree steps.
func roughCircle(g *rng, cx, cy, r float64, stroke, fill string) string {
	var parts []string
	if fill != "" {
		parts = append(parts, fmt.Sprintf(
			`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" opacity="0.1" />`,
			cx, cy, r, fill))
	}
	for range 2 {
		pts := make([]string, 0, 18)
		for a := 0; a < 360; a += 20 {
			ang := (float64(a) + g.jitter(0, angleJitter)) * math.Pi / 180
			rr := r + g.jitter(0, radiusJitter)
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", cx+rr*math.Cos(ang), cy+rr*math.Sin(ang)))
		}
		parts = append(parts, fmt.Sprintf(
			`<polyline points="%s" fill="none" stroke="%s" stroke-width="1.6" opacity="0.9" />`,
			strings.Join(pts, " "), stroke))
	}
	return strings.Join(parts, "\n")
}

// labelEscaper neutralizes the two characters that would break out of a text
// node. Attribute-position escaping is not needed; labels only ever appear as
// element content.
var labelEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// textEl emits a text label anchored at (x, y).
func textEl(x, y float64, content, color string) string {
	return fmt.Sprintf(
		`<text x="%.1f" y="%.1f" fill="%s" font-family="Inter, system-ui, -apple-system, Segoe UI, Roboto" font-size="14" opacity="0.9">%s</text>`,
		x, y, color, labelEscaper.Replace(content))
}
