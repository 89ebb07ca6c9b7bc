package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/notifier"
	"portfolio_admin/internal/repository"

	"github.com/google/uuid"
)

const DefaultMailSubject = "Response from Thavma Solutions"

type ContactService struct {
	repo    repository.MessageRepo
	sender  notifier.Sender
	subject string
}

func NewContactService(repo repository.MessageRepo, sender notifier.Sender, subject string) *ContactService {
	if subject == "" {
		subject = DefaultMailSubject
	}
	return &ContactService{repo: repo, sender: sender, subject: subject}
}

// Submit stores a visitor message. New messages always start unread.
func (s *ContactService) Submit(ctx context.Context, in models.ContactInput) (models.ContactMessage, error) {
	m := models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
		Status:  models.StatusUnread,
	}
	switch {
	case m.Name == "":
		return models.ContactMessage{}, fmt.Errorf("%w: name is required", ErrValidation)
	case m.Email == "":
		return models.ContactMessage{}, fmt.Errorf("%w: email is required", ErrValidation)
	case m.Message == "":
		return models.ContactMessage{}, fmt.Errorf("%w: message is required", ErrValidation)
	}

	now := time.Now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now
	if err := s.repo.Create(ctx, m); err != nil {
		return models.ContactMessage{}, err
	}
	return m, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a message forward through unread, read, responded.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (models.ContactMessage, error) {
	if !status.Valid() {
		return models.ContactMessage{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.ContactMessage{}, err
	}
	if !models.CanTransition(current.Status, status) {
		return models.ContactMessage{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	if current.Status == status {
		return current, nil
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, status, now); err != nil {
		return models.ContactMessage{}, err
	}
	current.Status = status
	current.UpdatedAt = now
	return current, nil
}

// Respond emails the response to the sender and only then records it.
func (s *ContactService) Respond(ctx context.Context, id, response string) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	response = strings.TrimSpace(response)

	err = s.sender.Send(ctx, notifier.Message{
		To:      m.Email,
		Subject: s.subject,
		Text:    response,
		HTML:    "<p>" + html.EscapeString(response) + "</p>",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return s.repo.SaveResponse(ctx, id, response, time.Now().UTC())
}

// Stats counts messages per status.
func (s *ContactService) Stats(ctx context.Context) (models.InboxStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return models.InboxStats{}, err
	}
	st := models.InboxStats{
		Unread:    counts[models.StatusUnread],
		Read:      counts[models.StatusRead],
		Responded: counts[models.StatusResponded],
	}
	for _, n := range counts {
		st.Total += n
	}
	return st, nil
}
