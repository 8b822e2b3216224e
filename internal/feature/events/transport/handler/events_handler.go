// Package handler provides the HTTP handlers for the events feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/feature/events/transport/http/dto"
	"hackathon_backend/internal/platform/upload"
)

// EventsUsecase defines the event operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type EventsUsecase interface {
	SubmitRegistration(ctx context.Context, reg *entity.Registration) error
	SubmitIdea(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error
	ListRegistrations(ctx context.Context) ([]entity.Registration, error)
	ListIdeas(ctx context.Context) ([]entity.Idea, error)
	CountRegistrations(ctx context.Context) (int64, error)
}

// EventsHandler handles HTTP requests for registrations and idea submissions.
type EventsHandler struct {
	events EventsUsecase
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(events EventsUsecase) *EventsHandler {
	return &EventsHandler{events: events}
}

// Register handles POST /api/events/register.
func (h *EventsHandler) Register(c *gin.Context) {
	var req dto.RegistrationReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("registration validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg := &entity.Registration{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		College:     req.College,
		Branch:      req.Branch,
		Year:        req.Year,
		TeamName:    req.TeamName,
		TeamMembers: req.TeamMembers,
	}
	if err := h.events.SubmitRegistration(c.Request.Context(), reg); err != nil {
		slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	slog.Info("registration received", "email", req.Email, "college", req.College)
	c.JSON(http.StatusCreated, registrationItem(reg))
}

// SubmitIdea handles POST /api/events/idea (multipart).
// The "ppt" file part is optional; when present it must be a ppt, pptx or pdf
// of at most the configured size, and is rejected before anything is stored.
func (h *EventsHandler) SubmitIdea(c *gin.Context) {
	var req dto.IdeaReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("idea validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fh, err := c.FormFile("ppt")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file upload"})
			return
		}
		fh = nil
	}

	idea := &entity.Idea{
		ProjectTitle:        req.ProjectTitle,
		TeamName:            req.TeamName,
		LeaderEmail:         req.LeaderEmail,
		Theme:               req.Theme,
		ProblemStatement:    req.ProblemStatement,
		SolutionDescription: req.SolutionDescription,
		TechStack:           req.TechStack,
	}
	if err := h.events.SubmitIdea(c.Request.Context(), idea, fh); err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 5 MB limit"})
		case errors.Is(err, upload.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "only ppt, pptx and pdf files are accepted"})
		default:
			slog.Error("idea submission failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "idea submission failed"})
		}
		return
	}

	slog.Info("idea submitted", "team", req.TeamName, "title", req.ProjectTitle)
	c.JSON(http.StatusCreated, ideaItem(idea))
}

// Count handles GET /api/events/count. The count is public and requires no
// authentication.
func (h *EventsHandler) Count(c *gin.Context) {
	count, err := h.events.CountRegistrations(c.Request.Context())
	if err != nil {
		slog.Error("registration count failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count registrations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListRegistrations handles GET /api/events/registrations (admin only).
func (h *EventsHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.events.ListRegistrations(c.Request.Context())
	if err != nil {
		slog.Error("registration listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list registrations"})
		return
	}

	out := make([]dto.RegistrationItem, 0, len(regs))
	for i := range regs {
		out = append(out, registrationItem(&regs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListIdeas handles GET /api/events/ideas (admin only).
func (h *EventsHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.events.ListIdeas(c.Request.Context())
	if err != nil {
		slog.Error("idea listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ideas"})
		return
	}

	out := make([]dto.IdeaItem, 0, len(ideas))
	for i := range ideas {
		out = append(out, ideaItem(&ideas[i]))
	}
	c.JSON(http.StatusOK, out)
}

func registrationItem(reg *entity.Registration) dto.RegistrationItem {
	return dto.RegistrationItem{
		ID:          reg.ID,
		Name:        reg.Name,
		Email:       reg.Email,
		Mobile:      reg.Mobile,
		College:     reg.College,
		Branch:      reg.Branch,
		Year:        reg.Year,
		TeamName:    reg.TeamName,
		TeamMembers: reg.TeamMembers,
		CreatedAt:   reg.CreatedAt,
	}
}

func ideaItem(idea *entity.Idea) dto.IdeaItem {
	return dto.IdeaItem{
		ID:                  idea.ID,
		ProjectTitle:        idea.ProjectTitle,
		TeamName:            idea.TeamName,
		LeaderEmail:         idea.LeaderEmail,
		Theme:               idea.Theme,
		ProblemStatement:    idea.ProblemStatement,
		SolutionDescription: idea.SolutionDescription,
		TechStack:           idea.TechStack,
		Status:              idea.Status,
		AttachmentName:      idea.AttachmentName,
		AttachmentType:      idea.AttachmentType,
		AttachmentSize:      idea.AttachmentSize,
		CreatedAt:           idea.CreatedAt,
	}
}
