package pdflayout

var (
	helvetica     = Font{Family: "Helvetica", Size: 11}
	helveticaBold = Font{Family: "Helvetica", Style: "B", Size: 14}
)

// QALayout is the question/answer document: bold headings, body indented
// 20pt, wrapped at 85 characters, footer 30pt above the bottom edge.
func QALayout(footer string) Layout {
	return Layout{
		PageWidth:    LetterWidth,
		PageHeight:   LetterHeight,
		Margin:       50,
		Indent:       20,
		TopMargin:    50,
		BottomMargin: 50,
		LineHeight:   14,
		WrapWidth:    85,
		Heading:      helveticaBold,
		Body:         helvetica,
		Footnote:     Font{Family: "Helvetica", Size: 8},
		Footer:       footer,
		FooterY:      30,
	}
}

// PlainLayout is the free-text document: one unlabeled block, no footer.
func PlainLayout() Layout {
	return Layout{
		PageWidth:    LetterWidth,
		PageHeight:   LetterHeight,
		Margin:       50,
		TopMargin:    50,
		BottomMargin: 50,
		LineHeight:   14,
		WrapWidth:    90,
		Heading:      helveticaBold,
		Body:         Font{Family: "Helvetica", Size: 12},
	}
}
