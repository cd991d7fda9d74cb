package sketch

import (
	"strings"
	"testing"
)

func TestRenderDeterminism(t *testing.T) {
	opts := Options{Prompt: "dashboard with chart and list", Seed: Seed(42)}
	a := Render(opts)
	b := Render(opts)
	if a != b {
		t.Error("renders with an explicit seed should be byte-identical")
	}
}

func TestRenderDerivedSeedDeterminism(t *testing.T) {
	// With no explicit seed the seed comes from the prompt hash, so repeated
	// renders must still agree.
	opts := Options{Prompt: "a login form"}
	if Render(opts) != Render(opts) {
		t.Error("renders with a derived seed should be byte-identical")
	}
}

func TestRenderSeedChangesOutput(t *testing.T) {
	a := Render(Options{Prompt: "bar chart", Seed: Seed(1)})
	b := Render(Options{Prompt: "bar chart", Seed: Seed(2)})
	if a == b {
		t.Error("different seeds should change the jitter pattern")
	}
}

func TestRenderThemeFallback(t *testing.T) {
	base := Options{Prompt: "hero header", Seed: Seed(7)}

	unknown := base
	unknown.Theme = "unknown_xyz"
	slate := base
	slate.Theme = "slate"

	if Render(unknown) != Render(slate) {
		t.Error("unknown theme should render identically to slate")
	}
}

func TestRenderDocumentShape(t *testing.T) {
	svg := Render(Options{Prompt: "navbar", Seed: Seed(42)})

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="500" viewBox="0 0 800 500">`) {
		t.Errorf("unexpected document header: %.120s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("document should be closed")
	}
	if !strings.Contains(svg, `<rect width="100%" height="100%" fill="#0f172a"/>`) {
		t.Error("document should start with the theme background")
	}
}

func TestRenderFormBlock(t *testing.T) {
	svg := Render(Options{Prompt: "a login form with a search button", Seed: Seed(42)})

	if n := strings.Count(svg, ">Input</text>"); n != 1 {
		t.Errorf("expected exactly one Input label, got %d", n)
	}
	if n := strings.Count(svg, ">Button</text>"); n != 1 {
		t.Errorf("expected exactly one Button label, got %d", n)
	}

	// Only the form flag fires, so the outer form backdrop sits at the top
	// cursor with full inner width.
	if !strings.Contains(svg, `<rect x="24.0" y="24.0" width="752.0" height="120.0"`) {
		t.Error("form backdrop should span the full inner width at the start cursor")
	}

	// None of the other blocks appear
	for _, label := range []string{"Header / Title", "User Name", "List item", "Card ", "Your sketch will appear here"} {
		if strings.Contains(svg, ">"+label) {
			t.Errorf("unexpected block label %q in form-only render", label)
		}
	}
}

func TestRenderFallback(t *testing.T) {
	svg := Render(Options{Prompt: "xyzzyx quux", Seed: Seed(42)})

	if !strings.Contains(svg, "Your sketch will appear here") {
		t.Error("fallback placeholder missing")
	}
	for _, label := range []string{"Header / Title", "User Name", "List item", "Card "} {
		if strings.Contains(svg, ">"+label) {
			t.Errorf("fallback render should not contain %q", label)
		}
	}
}

func TestRenderCardsGrid(t *testing.T) {
	svg := Render(Options{Prompt: "photo gallery grid", Seed: Seed(42)})

	for _, label := range []string{"Card 1", "Card 2", "Card 3", "Card 4", "Card 5", "Card 6"} {
		if !strings.Contains(svg, ">"+label+"</text>") {
			t.Errorf("missing %q label", label)
		}
	}
	if n := strings.Count(svg, ">Card "); n != 6 {
		t.Errorf("expected exactly 6 card labels, got %d", n)
	}
	if strings.Contains(svg, "Card 7") {
		t.Error("grid should stop at Card 6")
	}
}

func TestRenderListBlock(t *testing.T) {
	svg := Render(Options{Prompt: "sidebar menu", Seed: Seed(42)})

	if n := strings.Count(svg, ">List item "); n != 5 {
		t.Errorf("expected 5 list rows, got %d", n)
	}
}

func TestRenderChartBars(t *testing.T) {
	svg := Render(Options{Prompt: "analytics chart", Seed: Seed(42)})

	// Outer frame is outline-only; each of the 6 bars carries a filled
	// backdrop in the accent color.
	if n := strings.Count(svg, `fill="#60a5fa" opacity="0.1" rx="8"`); n != 6 {
		t.Errorf("expected 6 accent-filled bars, got %d", n)
	}
}

func TestRenderCaption(t *testing.T) {
	svg := Render(Options{Prompt: "sidebar menu", Seed: Seed(42)})
	if !strings.Contains(svg, ">Prompt: sidebar menu</text>") {
		t.Error("caption should echo the prompt")
	}
}

func TestRenderCaptionTruncation(t *testing.T) {
	prompt := strings.Repeat("x", 100)
	svg := Render(Options{Prompt: prompt, Seed: Seed(42)})

	head := strings.Repeat("x", 80)
	if !strings.Contains(svg, ">Prompt: "+head+"</text>") {
		t.Error("caption should contain exactly the first 80 characters")
	}
	if strings.Contains(svg, strings.Repeat("x", 81)) {
		t.Error("caption should not leak past 80 characters")
	}
}

func TestRenderCaptionPreservesCase(t *testing.T) {
	svg := Render(Options{Prompt: "LOGIN Form", Seed: Seed(42)})
	if !strings.Contains(svg, ">Prompt: LOGIN Form</text>") {
		t.Error("caption should show the original prompt, not the lower-cased copy")
	}
}

func TestRenderEscapesPrompt(t *testing.T) {
	svg := Render(Options{Prompt: "<script>alert(1)</script>", Seed: Seed(42)})
	if strings.Contains(svg, "<script>") {
		t.Error("prompt must not inject raw markup")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("prompt angle brackets should be escaped")
	}
}

func TestRenderDegenerateDimensions(t *testing.T) {
	// Geometry is intentionally not validated; negative dimensions still
	// produce a well-formed document.
	svg := Render(Options{Prompt: "chart", Width: -10, Height: -10, Seed: Seed(1)})
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="-10" height="-10"`) {
		t.Errorf("unexpected header for degenerate dimensions: %.120s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("degenerate document should still be closed")
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Width != 800 || o.Height != 500 || o.Theme != "slate" {
		t.Errorf("defaults unexpected: %+v", o)
	}

	// Explicit values survive
	o = Options{Width: 300, Height: 200, Theme: "sand"}
	o.SetDefaults()
	if o.Width != 300 || o.Height != 200 || o.Theme != "sand" {
		t.Errorf("explicit values should survive SetDefaults: %+v", o)
	}
}

func TestOptionsEffectiveSeed(t *testing.T) {
	withSeed := Options{Prompt: "chart", Seed: Seed(99)}
	if withSeed.EffectiveSeed() != 99 {
		t.Error("explicit seed should win")
	}

	// Explicit zero is honored, not treated as unset
	zero := Options{Prompt: "chart", Seed: Seed(0)}
	if zero.EffectiveSeed() != 0 {
		t.Error("explicit zero seed should be used as-is")
	}

	derived := Options{Prompt: "chart"}
	if derived.EffectiveSeed() != SeedFromPrompt("chart") {
		t.Error("nil seed should derive from the prompt")
	}
}
