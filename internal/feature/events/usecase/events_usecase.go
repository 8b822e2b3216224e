// Package usecase implements the business logic for the events feature.
package usecase

import (
	"context"
	"mime/multipart"

	"hackathon_backend/internal/feature/events/domain/entity"
)

// RegistrationRepository abstracts the persistence layer for registrations.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type RegistrationRepository interface {
	// Create persists a new registration.
	Create(ctx context.Context, reg *entity.Registration) error

	// ListNewestFirst returns all registrations, most recent first.
	ListNewestFirst(ctx context.Context) ([]entity.Registration, error)

	// Count returns the total number of registrations.
	Count(ctx context.Context) (int64, error)
}

// IdeaRepository abstracts the persistence layer for idea submissions.
type IdeaRepository interface {
	// Create persists a new idea.
	Create(ctx context.Context, idea *entity.Idea) error

	// ListNewestFirst returns all ideas, most recent first.
	ListNewestFirst(ctx context.Context) ([]entity.Idea, error)
}

// AttachmentStore validates and persists uploaded pitch files.
// Validation failures must surface before any database write.
type AttachmentStore interface {
	Save(fh *multipart.FileHeader) (*entity.Attachment, error)
}

// EventsUsecase provides business logic for registrations and ideas.
type EventsUsecase struct {
	regs  RegistrationRepository
	ideas IdeaRepository
	files AttachmentStore
}

// NewEventsUsecase creates a new EventsUsecase.
func NewEventsUsecase(regs RegistrationRepository, ideas IdeaRepository, files AttachmentStore) *EventsUsecase {
	return &EventsUsecase{
		regs:  regs,
		ideas: ideas,
		files: files,
	}
}

// SubmitRegistration persists a participant registration.
func (u *EventsUsecase) SubmitRegistration(ctx context.Context, reg *entity.Registration) error {
	return u.regs.Create(ctx, reg)
}

// SubmitIdea stores the optional attachment and persists the idea.
// The file is validated and saved first so an oversized or mistyped upload
// never produces a row.
func (u *EventsUsecase) SubmitIdea(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
	if idea.Status == "" {
		idea.Status = entity.StatusPending
	}

	if fh != nil {
		stored, err := u.files.Save(fh)
		if err != nil {
			return err
		}
		idea.AttachmentPath = stored.Path
		idea.AttachmentName = stored.Name
		idea.AttachmentType = stored.ContentType
		idea.AttachmentSize = stored.Size
	}

	return u.ideas.Create(ctx, idea)
}

// ListRegistrations returns all registrations, newest first.
func (u *EventsUsecase) ListRegistrations(ctx context.Context) ([]entity.Registration, error) {
	return u.regs.ListNewestFirst(ctx)
}

// ListIdeas returns all idea submissions, newest first.
func (u *EventsUsecase) ListIdeas(ctx context.Context) ([]entity.Idea, error) {
	return u.ideas.ListNewestFirst(ctx)
}

// CountRegistrations returns the public registration count.
func (u *EventsUsecase) CountRegistrations(ctx context.Context) (int64, error) {
	return u.regs.Count(ctx)
}
