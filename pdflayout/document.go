package pdflayout

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// fpdfCanvas adapts fpdf to Canvas. Pages are opened lazily so that a
// ShowPage at the very end does not leave a trailing blank page.
type fpdfCanvas struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	open bool
}

func newFPDFCanvas(l Layout) *fpdfCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("askpdf", true)
	return &fpdfCanvas{
		pdf: pdf,
		// core fonts are cp1252
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) SetFont(f Font) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
}

func (c *fpdfCanvas) DrawString(x, y float64, text string) {
	if !c.open {
		c.pdf.AddPage()
		c.open = true
	}
	c.pdf.Text(x, y, c.tr(text))
}

func (c *fpdfCanvas) ShowPage() {
	if !c.open {
		c.pdf.AddPage()
	}
	c.open = false
}

// Document renders blocks with layout l and returns the serialized PDF.
func Document(l Layout, blocks []Block) ([]byte, error) {
	c := newFPDFCanvas(l)
	Render(l, blocks, c)
	if err := c.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}
