package services

import (
	"time"

	"askpdf/metrics"
	"askpdf/pdflayout"
)

const ContentTypePDF = "application/pdf"

// PDFFile is a rendered document ready to be sent as an attachment.
type PDFFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type PDFService struct {
	now      func() time.Time
	document func(pdflayout.Layout, []pdflayout.Block) ([]byte, error)
}

func NewPDFService() *PDFService {
	return &PDFService{now: time.Now, document: pdflayout.Document}
}

// QADocument renders a question/answer pair with a generation footer.
func (s *PDFService) QADocument(question, answer string) (*PDFFile, error) {
	if question == "" || answer == "" {
		return nil, &ValidationError{Message: "Question and answer are required"}
	}

	now := s.now()
	layout := pdflayout.QALayout("Generated on: " + now.Format("2006-01-02 15:04:05"))
	data, err := s.document(layout, []pdflayout.Block{
		{Label: "Question:", Text: question},
		{Label: "Answer:", Text: answer},
	})
	if err != nil {
		metrics.DocumentsGenerated.WithLabelValues("qa", "error").Inc()
		return nil, &DocumentGenerationError{Err: err}
	}
	metrics.DocumentsGenerated.WithLabelValues("qa", "ok").Inc()

	return &PDFFile{
		Name:        "qa_" + now.Format("20060102_150405") + ".pdf",
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}

// TextDocument renders arbitrary text as a single unlabeled block.
func (s *PDFService) TextDocument(text string) (*PDFFile, error) {
	data, err := s.document(pdflayout.PlainLayout(), []pdflayout.Block{{Text: text}})
	if err != nil {
		metrics.DocumentsGenerated.WithLabelValues("text", "error").Inc()
		return nil, &DocumentGenerationError{Err: err}
	}
	metrics.DocumentsGenerated.WithLabelValues("text", "ok").Inc()

	return &PDFFile{Name: "output.pdf", ContentType: ContentTypePDF, Data: data}, nil
}
