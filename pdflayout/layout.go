// Package pdflayout lays plain text out on fixed-size pages.
//
// Wrapping is by character count only: a line is cut every WrapWidth runes
// regardless of words or glyph widths. Coordinates are in points with the
// origin at the top-left corner of the page and y growing downwards.
package pdflayout

import "unicode/utf8"

// US letter in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Font is a core PDF font selection; Style is "" or "B".
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Block is one run of text. A non-empty Label is drawn as a heading above
// the text and indents the body by Layout.Indent.
type Block struct {
	Label string
	Text  string
}

// Layout fixes page geometry, fonts and the wrap width for one document.
type Layout struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	Indent       float64
	TopMargin    float64
	BottomMargin float64
	LineHeight   float64
	WrapWidth    int

	Heading  Font
	Body     Font
	Footnote Font

	// Footer is drawn once on the last page, FooterY points above the
	// bottom edge. Empty means no footer.
	Footer  string
	FooterY float64
}

// LinesPerPage is how many body lines fit on a page that starts at the top
// margin with no heading.
func (l Layout) LinesPerPage() int {
	usable := l.PageHeight - l.BottomMargin - l.TopMargin
	if usable < 0 || l.LineHeight <= 0 {
		return 1
	}
	return int(usable/l.LineHeight) + 1
}

// Canvas is an imperative drawing surface. ShowPage finalises the current
// page; drawing after it goes onto a new one.
type Canvas interface {
	SetFont(f Font)
	DrawString(x, y float64, text string)
	ShowPage()
}

// Cursor is the mutable drawing position threaded through Render.
type Cursor struct {
	X          float64
	Y          float64
	PageHeight float64
	Margin     float64
	LineHeight float64
	FontSize   float64
}

// Wrap cuts line into chunks of at most width runes. An empty line yields a
// single empty chunk so blank lines keep their vertical space.
func Wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) == 0 || width <= 0 {
		return []string{line}
	}
	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for len(runes) > 0 {
		n := width
		if n > len(runes) {
			n = len(runes)
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// SplitLines splits text at line boundaries. "\r\n" counts as one break and
// a trailing break does not start another line. Empty text is one empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

type renderer struct {
	layout Layout
	canvas Canvas
	cur    Cursor
	pages  int
	dirty  bool
}

func (r *renderer) setFont(f Font) {
	r.canvas.SetFont(f)
	r.cur.FontSize = f.Size
}

func (r *renderer) draw(x float64, text string) {
	r.cur.X = x
	r.canvas.DrawString(x, r.cur.Y, text)
	r.dirty = true
}

func (r *renderer) showPage() {
	r.canvas.ShowPage()
	r.pages++
	r.dirty = false
}

// advance moves down one line and breaks the page once the cursor passes
// the bottom margin.
func (r *renderer) advance() {
	r.cur.Y += r.cur.LineHeight
	if r.cur.Y > r.layout.PageHeight-r.layout.BottomMargin {
		r.showPage()
		r.setFont(r.layout.Body)
		r.cur.Y = r.layout.TopMargin
	}
}

// Render draws blocks onto c and returns the number of finalised pages.
func Render(l Layout, blocks []Block, c Canvas) int {
	r := &renderer{
		layout: l,
		canvas: c,
		cur: Cursor{
			X:          l.Margin,
			Y:          l.TopMargin,
			PageHeight: l.PageHeight,
			Margin:     l.Margin,
			LineHeight: l.LineHeight,
		},
	}
	if len(blocks) == 0 {
		blocks = []Block{{}}
	}

	for i, b := range blocks {
		if i > 0 {
			r.cur.Y += l.LineHeight
		}
		x := l.Margin
		if b.Label != "" {
			r.setFont(l.Heading)
			r.draw(l.Margin, b.Label)
			r.cur.Y += l.LineHeight
			x += l.Indent
		}
		r.setFont(l.Body)

		for _, line := range SplitLines(b.Text) {
			for _, chunk := range Wrap(line, l.WrapWidth) {
				r.draw(x, chunk)
				r.advance()
			}
		}
	}

	if l.Footer != "" {
		r.setFont(l.Footnote)
		r.canvas.DrawString(l.Margin, l.PageHeight-l.FooterY, l.Footer)
		r.dirty = true
	}

	if r.dirty {
		r.showPage()
	}
	return r.pages
}
