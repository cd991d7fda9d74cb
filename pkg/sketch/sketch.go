package sketch

import (
	"fmt"
	"strings"
)

// Default viewport dimensions, applied when the caller leaves Width or
// Height unset.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// Layout constants shared by every block.
const (
	margin        = 24.0 // horizontal margin on each side, also the starting cursor
	captionOffset = 12.0 // caption baseline distance from the bottom edge
	captionLimit  = 80   // caption shows at most this many characters of the prompt
)

// Options configures a single render. The zero value of Width, Height, and
// Theme means "use the default"; negative dimensions are passed through
// untouched and yield degenerate but well-formed markup.
type Options struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Seed   *int64 `json:"seed,omitempty"`
	Theme  string `json:"theme,omitempty"`
}

// SetDefaults applies the default dimensions and theme. Idempotent.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
}

// EffectiveSeed resolves the RNG seed: the explicit seed when set, otherwise
// a stable hash of the prompt so identical prompts render identically.
func (o Options) EffectiveSeed() uint64 {
	if o.Seed != nil {
		return uint64(*o.Seed)
	}
	return SeedFromPrompt(o.Prompt)
}

// Render produces the complete SVG document for opts. It is deterministic:
// identical options yield byte-identical output. It never fails; pathological
// inputs (empty prompt, unknown theme, non-positive dimensions) still produce
// a well-formed document.
func Render(opts Options) string {
	opts.SetDefaults()

	c := composer{
		g:       newRNG(opts.EffectiveSeed()),
		palette: LookupTheme(opts.Theme),
		flags:   Classify(opts.Prompt),
		prompt:  opts.Prompt,
		width:   opts.Width,
		height:  opts.Height,
		y:       margin,
	}
	return c.compose()
}

// composer accumulates SVG fragments while advancing a vertical cursor.
// One composer serves exactly one render call.
type composer struct {
	g       *rng
	palette Theme
	flags   Flags
	prompt  string
	width   int
	height  int

	parts  []string
	y      float64 // vertical cursor
	innerW float64 // usable width between the margins
}

func (c *composer) compose() string {
	c.innerW = float64(c.width) - 2*margin

	c.parts = append(c.parts,
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
			c.width, c.height, c.width, c.height),
		fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`, c.palette.Background),
	)

	// Blocks stack in a fixed order regardless of keyword order in the prompt.
	if c.flags.Header {
		c.header()
	}
	if c.flags.Avatar {
		c.avatar()
	}
	if c.flags.Form {
		c.form()
	}
	if c.flags.Cards {
		c.cards()
	}
	if c.flags.List {
		c.list()
	}
	if c.flags.Chart {
		c.chart()
	}
	if !c.flags.Any() {
		c.fallback()
	}
	c.caption()

	c.parts = append(c.parts, "</svg>")
	return strings.Join(c.parts, "\n")
}

func (c *composer) emit(fragment string) {
	c.parts = append(c.parts, fragment)
}

func (c *composer) header() {
	ink, accent := c.palette.Ink, c.palette.Accent
	c.emit(roughRect(c.g, margin, c.y, c.innerW, 60, ink, accent))
	c.emit(textEl(margin+16, c.y+36, "Header / Title", ink))
	c.y += 80
}

func (c *composer) avatar() {
	ink, accent := c.palette.Ink, c.palette.Accent
	c.emit(roughCircle(c.g, margin+32, c.y+32, 24, ink, accent))
	c.emit(textEl(margin+72, c.y+38, "User Name", ink))
	c.y += 72
}

func (c *composer) form() {
	ink, accent := c.palette.Ink, c.palette.Accent
	c.emit(roughRect(c.g, margin, c.y, c.innerW, 120, ink, accent))
	c.emit(textEl(margin+16, c.y+28, "Input", ink))
	c.emit(roughRect(c.g, margin+12, c.y+40, c.innerW-24, 28, ink, ""))
	c.emit(textEl(margin+16, c.y+80, "Button", ink))
	c.emit(roughRect(c.g, margin+12, c.y+90, 120, 28, ink, accent))
	c.y += 140
}

func (c *composer) cards() {
	ink := c.palette.Ink
	const (
		cols = 3
		rows = 2
		gap  = 14.0
		ch   = 100.0
	)
	cw := (c.innerW - gap*(cols-1)) / cols
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			x := margin + float64(col)*(cw+gap)
			c.emit(roughRect(c.g, x, c.y, cw, ch, ink, ""))
			c.emit(textEl(x+10, c.y+24, fmt.Sprintf("Card %d", r*cols+col+1), ink))
		}
		c.y += ch + gap
	}
	c.y += 8
}

func (c *composer) list() {
	ink := c.palette.Ink
	const (
		rowHeight = 28.0
		rowCount  = 5
	)
	c.emit(roughRect(c.g, margin, c.y, c.innerW, rowHeight*rowCount+20, ink, ""))
	for i := 0; i < rowCount; i++ {
		c.emit(textEl(margin+16, c.y+24+float64(i)*rowHeight, fmt.Sprintf("List item %d", i+1), ink))
		c.emit(roughLine(c.g, margin+10, c.y+30+float64(i)*rowHeight, margin+c.innerW-10, c.y+30+float64(i)*rowHeight, ink))
	}
	c.y += rowHeight*rowCount + 40
}

func (c *composer) chart() {
	ink, accent := c.palette.Ink, c.palette.Accent
	const (
		chartHeight = 160.0
		barCount    = 6
	)
	c.emit(roughRect(c.g, margin, c.y, c.innerW, chartHeight, ink, ""))
	barWidth := c.innerW / (barCount * 1.5)
	for i := 0; i < barCount; i++ {
		barH := float64(c.g.intBetween(40, chartHeight-30))
		bx := margin + 20 + float64(i)*(barWidth*1.5)
		by := c.y + chartHeight - barH - 10
		c.emit(roughRect(c.g, bx, by, barWidth, barH, accent, accent))
	}
	c.y += chartHeight + 20
}

// fallback draws a generic title plus placeholder when no keyword matched.
func (c *composer) fallback() {
	ink, accent := c.palette.Ink, c.palette.Accent
	c.emit(roughRect(c.g, margin, c.y, c.innerW, 60, ink, accent))
	c.emit(textEl(margin+16, c.y+36, "Title", ink))
	c.y += 80
	c.emit(roughRect(c.g, margin, c.y, c.innerW, 160, ink, ""))
	c.emit(textEl(margin+16, c.y+40, "Your sketch will appear here", ink))
}

// caption appends the prompt echo near the bottom edge, truncated to the
// first captionLimit characters of the original (not lower-cased) prompt.
func (c *composer) caption() {
	c.emit(textEl(margin, float64(c.height)-captionOffset, "Prompt: "+truncate(c.prompt, captionLimit), c.palette.Ink))
}

// truncate returns the first n runes of s. Truncation is rune-based so a
// multi-byte character is never split mid-sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
