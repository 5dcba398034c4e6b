package pdflayout

import (
	"strings"
	"testing"
)

type drawCall struct {
	page int
	x, y float64
	text string
	font Font
}

// recorder is a Canvas that keeps every draw call in order.
type recorder struct {
	font      Font
	page      int
	finalized int
	fonts     []Font
	draws     []drawCall
}

func (r *recorder) SetFont(f Font) {
	r.font = f
	r.fonts = append(r.fonts, f)
}

func (r *recorder) DrawString(x, y float64, text string) {
	r.draws = append(r.draws, drawCall{page: r.page, x: x, y: y, text: text, font: r.font})
}

func (r *recorder) ShowPage() {
	r.finalized++
	r.page++
}

func (r *recorder) bodyDraws(f Font) []drawCall {
	var out []drawCall
	for _, d := range r.draws {
		if d.font == f {
			out = append(out, d)
		}
	}
	return out
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  int
	}{
		{name: "empty", line: "", width: 85, want: 1},
		{name: "short", line: "hello", width: 85, want: 1},
		{name: "exact", line: strings.Repeat("a", 85), width: 85, want: 1},
		{name: "one over", line: strings.Repeat("a", 86), width: 85, want: 2},
		{name: "long", line: strings.Repeat("x", 200), width: 85, want: 3},
		{name: "multibyte", line: strings.Repeat("é", 10), width: 3, want: 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chunks := Wrap(tc.line, tc.width)
			if len(chunks) != tc.want {
				t.Fatalf("expected %d chunks, got %d", tc.want, len(chunks))
			}
			if got := strings.Join(chunks, ""); got != tc.line {
				t.Fatalf("chunks do not reconstruct line: %q", got)
			}
			for _, c := range chunks {
				if n := len([]rune(c)); n > tc.width {
					t.Fatalf("chunk of %d runes exceeds width %d", n, tc.width)
				}
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{""}},
		{name: "single", text: "a", want: []string{"a"}},
		{name: "trailing newline", text: "a\n", want: []string{"a"}},
		{name: "only newline", text: "\n", want: []string{""}},
		{name: "blank interior line", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", text: "a\r\nb\nc", want: []string{"a", "b", "c"}},
		{name: "lone cr", text: "a\rb", want: []string{"a", "b"}},
		{name: "cr then crlf", text: "a\r\r\nb", want: []string{"a", "", "b"}},
		{name: "form feed and vertical tab", text: "a\fb\vc", want: []string{"a", "b", "c"}},
		{name: "unicode separators", text: "a\u2028b\u2029c\u0085d", want: []string{"a", "b", "c", "d"}},
		{name: "group separators", text: "a\x1cb\x1dc\x1ed", want: []string{"a", "b", "c", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %q, got %q", tc.want, got)
				}
			}
		})
	}
}

func TestRenderTrailingNewline(t *testing.T) {
	rec := &recorder{}
	Render(PlainLayout(), []Block{{Text: "a\n"}}, rec)
	if len(rec.draws) != 1 || rec.draws[0].text != "a" {
		t.Fatalf("expected a single draw of %q, got %+v", "a", rec.draws)
	}

	rec = &recorder{}
	Render(PlainLayout(), []Block{{Text: "a\rb"}}, rec)
	if len(rec.draws) != 2 || rec.draws[0].text != "a" || rec.draws[1].text != "b" {
		t.Fatalf("lone carriage return not treated as a break: %+v", rec.draws)
	}
}

func TestRenderEmptyBlock(t *testing.T) {
	rec := &recorder{}
	pages := Render(PlainLayout(), []Block{{Text: ""}}, rec)
	if pages != 1 || rec.finalized != 1 {
		t.Fatalf("expected one finalized page, got %d (canvas %d)", pages, rec.finalized)
	}
	if len(rec.draws) != 1 || rec.draws[0].text != "" {
		t.Fatalf("expected a single empty draw, got %+v", rec.draws)
	}
}

func TestRenderNoBlocks(t *testing.T) {
	rec := &recorder{}
	if pages := Render(PlainLayout(), nil, rec); pages != 1 {
		t.Fatalf("expected one page, got %d", pages)
	}
}

func TestRenderBlankLinesKeepSpacing(t *testing.T) {
	l := PlainLayout()
	rec := &recorder{}
	Render(l, []Block{{Text: "a\n\nb"}}, rec)
	if len(rec.draws) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(rec.draws))
	}
	if rec.draws[2].y-rec.draws[0].y != 2*l.LineHeight {
		t.Fatalf("blank line lost its spacing: %+v", rec.draws)
	}
}

func TestRenderQuestionAnswer(t *testing.T) {
	l := QALayout("Generated on: 2024-01-02 03:04:05")
	rec := &recorder{}
	answer := strings.Repeat("x", 200)
	pages := Render(l, []Block{{Label: "Question:", Text: "Q"}, {Label: "Answer:", Text: answer}}, rec)
	if pages != 1 {
		t.Fatalf("expected a single page, got %d", pages)
	}

	headings := rec.bodyDraws(l.Heading)
	if len(headings) != 2 || headings[0].text != "Question:" || headings[1].text != "Answer:" {
		t.Fatalf("unexpected headings: %+v", headings)
	}
	if headings[0].x != l.Margin || headings[0].y != l.TopMargin {
		t.Fatalf("first heading at (%v,%v)", headings[0].x, headings[0].y)
	}

	body := rec.bodyDraws(l.Body)
	if len(body) != 4 {
		t.Fatalf("expected 1 question line and 3 answer lines, got %d", len(body))
	}
	var rebuilt strings.Builder
	for _, d := range body[1:] {
		if d.x != l.Margin+l.Indent {
			t.Fatalf("body line not indented: x=%v", d.x)
		}
		rebuilt.WriteString(d.text)
	}
	if rebuilt.String() != answer {
		t.Fatalf("answer chunks do not reconstruct the answer")
	}

	// heading, question line, blank spacer, heading
	if headings[1].y != l.TopMargin+3*l.LineHeight {
		t.Fatalf("answer heading at y=%v", headings[1].y)
	}

	foot := rec.bodyDraws(l.Footnote)
	if len(foot) != 1 || foot[0].y != l.PageHeight-l.FooterY || foot[0].text != l.Footer {
		t.Fatalf("unexpected footer: %+v", foot)
	}
}

func TestLinesPerPage(t *testing.T) {
	if n := PlainLayout().LinesPerPage(); n != 50 {
		t.Fatalf("expected 50 lines per page, got %d", n)
	}
	if n := QALayout("").LinesPerPage(); n != 50 {
		t.Fatalf("expected 50 lines per page, got %d", n)
	}
}

func TestRenderPageCount(t *testing.T) {
	l := PlainLayout()
	perPage := l.LinesPerPage()
	for _, n := range []int{1, 2, 49, 50, 51, 100, 101, 250} {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = "line"
		}
		rec := &recorder{}
		pages := Render(l, []Block{{Text: strings.Join(lines, "\n")}}, rec)
		if want := ceilDiv(n, perPage); pages != want {
			t.Fatalf("%d lines: expected %d pages, got %d", n, want, pages)
		}
		if rec.finalized != pages {
			t.Fatalf("%d lines: canvas saw %d pages, renderer reported %d", n, rec.finalized, pages)
		}
	}
}

func TestRenderPageCountNewlineTerminated(t *testing.T) {
	l := PlainLayout()
	perPage := l.LinesPerPage()
	for _, n := range []int{1, perPage, perPage + 1, 2 * perPage} {
		rec := &recorder{}
		pages := Render(l, []Block{{Text: strings.Repeat("row\n", n)}}, rec)
		if want := ceilDiv(n, perPage); pages != want {
			t.Fatalf("%d newline-terminated rows: expected %d pages, got %d", n, want, pages)
		}
		if len(rec.draws) != n {
			t.Fatalf("%d newline-terminated rows: expected %d draws, got %d", n, n, len(rec.draws))
		}
	}
}

func TestRenderPageBreakResetsCursor(t *testing.T) {
	l := PlainLayout()
	perPage := l.LinesPerPage()
	text := strings.TrimSuffix(strings.Repeat("row\n", perPage+1), "\n")
	rec := &recorder{}
	Render(l, []Block{{Text: text}}, rec)

	last := rec.draws[len(rec.draws)-1]
	if last.page != 1 {
		t.Fatalf("expected overflow line on second page, got page %d", last.page)
	}
	if last.y != l.TopMargin {
		t.Fatalf("cursor not reset to top margin: y=%v", last.y)
	}
	if last.font != l.Body {
		t.Fatalf("body font not restored after page break: %+v", last.font)
	}
	prev := rec.draws[len(rec.draws)-2]
	if prev.y > l.PageHeight-l.BottomMargin {
		t.Fatalf("line drawn below bottom margin: y=%v", prev.y)
	}
}

func TestRenderFooterAfterPageBreak(t *testing.T) {
	l := QALayout("footer")
	text := strings.Repeat("a\n", 120)
	rec := &recorder{}
	pages := Render(l, []Block{{Label: "Question:", Text: "q"}, {Label: "Answer:", Text: text}}, rec)
	foot := rec.bodyDraws(l.Footnote)
	if len(foot) != 1 {
		t.Fatalf("expected one footer, got %d", len(foot))
	}
	if foot[0].page != pages-1 {
		t.Fatalf("footer on page %d, last page is %d", foot[0].page, pages-1)
	}
}
