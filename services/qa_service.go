package services

import (
	"context"
	"strings"
	"time"

	"askpdf/models"
)

// ISO-8601 local time with microseconds.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Completer is the outbound chat-completion call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// QAService relays questions to a Completer.
type QAService struct {
	client Completer
	now    func() time.Time
}

func NewQAService(client Completer) *QAService {
	return &QAService{client: client, now: time.Now}
}

// Ask relays question upstream. Blank questions are rejected before any
// outbound call is made; failures are never retried.
func (s *QAService) Ask(ctx context.Context, question string) (*models.QARecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &ValidationError{Message: "Question cannot be empty"}
	}

	answer, err := s.client.Complete(ctx, question)
	if err != nil {
		return nil, typed(err)
	}

	return &models.QARecord{
		Question:  question,
		Answer:    answer,
		Timestamp: s.now().Format(timestampLayout),
	}, nil
}
