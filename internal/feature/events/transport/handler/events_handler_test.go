package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/platform/upload"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockEventsUsecase is a mock implementation of the EventsUsecase interface.
type mockEventsUsecase struct {
	submitRegistrationFn func(ctx context.Context, reg *entity.Registration) error
	submitIdeaFn         func(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error
	listRegistrationsFn  func(ctx context.Context) ([]entity.Registration, error)
	listIdeasFn          func(ctx context.Context) ([]entity.Idea, error)
	countFn              func(ctx context.Context) (int64, error)
}

func (m *mockEventsUsecase) SubmitRegistration(ctx context.Context, reg *entity.Registration) error {
	if m.submitRegistrationFn != nil {
		return m.submitRegistrationFn(ctx, reg)
	}
	return nil
}

func (m *mockEventsUsecase) SubmitIdea(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
	if m.submitIdeaFn != nil {
		return m.submitIdeaFn(ctx, idea, fh)
	}
	return nil
}

func (m *mockEventsUsecase) ListRegistrations(ctx context.Context) ([]entity.Registration, error) {
	if m.listRegistrationsFn != nil {
		return m.listRegistrationsFn(ctx)
	}
	return nil, nil
}

func (m *mockEventsUsecase) ListIdeas(ctx context.Context) ([]entity.Idea, error) {
	if m.listIdeasFn != nil {
		return m.listIdeasFn(ctx)
	}
	return nil, nil
}

func (m *mockEventsUsecase) CountRegistrations(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func serve(h gin.HandlerFunc, method, path string, req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, path, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var ideaFields = map[string]string{
	"projectTitle":        "Smart Attendance",
	"teamName":            "Bitwise",
	"leaderEmail":         "lead@example.com",
	"theme":               "EdTech",
	"problemStatement":    "Manual attendance wastes lecture time.",
	"solutionDescription": "Face-recognition check-in at the door.",
	"techStack":           "Go, React, MySQL",
}

// multipartIdeaRequest builds a multipart POST with the idea fields and an
// optional file part named "ppt".
func multipartIdeaRequest(t *testing.T, fields map[string]string, fileName, fileType string, fileContent []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="ppt"; filename="`+fileName+`"`)
		h.Set("Content-Type", fileType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events/idea", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestEventsHandler_Register(t *testing.T) {
	t.Run("success returns the created record", func(t *testing.T) {
		uc := &mockEventsUsecase{
			submitRegistrationFn: func(ctx context.Context, reg *entity.Registration) error {
				reg.ID = 12
				reg.CreatedAt = time.Now()
				return nil
			},
		}
		h := NewEventsHandler(uc)

		body, _ := json.Marshal(gin.H{
			"name": "Asha", "email": "asha@example.com", "mobile": "9876543210",
			"college": "NRCM", "branch": "CSE", "year": "3rd Year",
			"teamName": "Bitwise", "teamMembers": "Asha, Ravi",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/events/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := serve(h.Register, http.MethodPost, "/api/events/register", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(12), resp["id"])
		assert.Equal(t, "Bitwise", resp["teamName"])
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		h := NewEventsHandler(&mockEventsUsecase{})

		body, _ := json.Marshal(gin.H{"name": "Asha", "email": "asha@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/events/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := serve(h.Register, http.MethodPost, "/api/events/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Mobile")
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		uc := &mockEventsUsecase{
			submitRegistrationFn: func(ctx context.Context, reg *entity.Registration) error {
				return errors.New("store unreachable")
			},
		}
		h := NewEventsHandler(uc)

		body, _ := json.Marshal(gin.H{
			"name": "Asha", "email": "asha@example.com", "mobile": "9876543210",
			"college": "NRCM", "branch": "CSE", "year": "3rd Year",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/events/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := serve(h.Register, http.MethodPost, "/api/events/register", req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEventsHandler_SubmitIdea(t *testing.T) {
	t.Run("success without attachment", func(t *testing.T) {
		var gotFile *multipart.FileHeader
		uc := &mockEventsUsecase{
			submitIdeaFn: func(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
				gotFile = fh
				idea.ID = 3
				idea.Status = entity.StatusPending
				return nil
			},
		}
		h := NewEventsHandler(uc)

		req := multipartIdeaRequest(t, ideaFields, "", "", nil)
		w := serve(h.SubmitIdea, http.MethodPost, "/api/events/idea", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Nil(t, gotFile)
		assert.Contains(t, w.Body.String(), `"status":"Pending"`)
	})

	t.Run("success with attachment forwards the file header", func(t *testing.T) {
		var gotFile *multipart.FileHeader
		uc := &mockEventsUsecase{
			submitIdeaFn: func(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
				gotFile = fh
				return nil
			},
		}
		h := NewEventsHandler(uc)

		req := multipartIdeaRequest(t, ideaFields, "deck.pdf", "application/pdf", []byte("%PDF-1.4 stub"))
		w := serve(h.SubmitIdea, http.MethodPost, "/api/events/idea", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, gotFile)
		assert.Equal(t, "deck.pdf", gotFile.Filename)
	})

	t.Run("oversized upload maps to 400", func(t *testing.T) {
		uc := &mockEventsUsecase{
			submitIdeaFn: func(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
				return upload.ErrFileTooLarge
			},
		}
		h := NewEventsHandler(uc)

		req := multipartIdeaRequest(t, ideaFields, "deck.pdf", "application/pdf", []byte("big"))
		w := serve(h.SubmitIdea, http.MethodPost, "/api/events/idea", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "5 MB")
	})

	t.Run("unsupported type maps to 400", func(t *testing.T) {
		uc := &mockEventsUsecase{
			submitIdeaFn: func(ctx context.Context, idea *entity.Idea, fh *multipart.FileHeader) error {
				return upload.ErrUnsupportedType
			},
		}
		h := NewEventsHandler(uc)

		req := multipartIdeaRequest(t, ideaFields, "virus.exe", "application/octet-stream", []byte("nope"))
		w := serve(h.SubmitIdea, http.MethodPost, "/api/events/idea", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ppt, pptx and pdf")
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		h := NewEventsHandler(&mockEventsUsecase{})

		fields := map[string]string{"projectTitle": "Solo"}
		req := multipartIdeaRequest(t, fields, "", "", nil)
		w := serve(h.SubmitIdea, http.MethodPost, "/api/events/idea", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventsHandler_Count(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockEventsUsecase{
			countFn: func(ctx context.Context) (int64, error) { return 57, nil },
		}
		h := NewEventsHandler(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/events/count", nil)
		w := serve(h.Count, http.MethodGet, "/api/events/count", req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":57}`, w.Body.String())
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		uc := &mockEventsUsecase{
			countFn: func(ctx context.Context) (int64, error) { return 0, errors.New("store unreachable") },
		}
		h := NewEventsHandler(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/events/count", nil)
		w := serve(h.Count, http.MethodGet, "/api/events/count", req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEventsHandler_Listings(t *testing.T) {
	t.Run("registrations are returned in repository order", func(t *testing.T) {
		uc := &mockEventsUsecase{
			listRegistrationsFn: func(ctx context.Context) ([]entity.Registration, error) {
				return []entity.Registration{
					{ID: 2, Name: "Newest", Email: "n@example.com", Mobile: "1", College: "NRCM", Branch: "CSE", Year: "3"},
					{ID: 1, Name: "Oldest", Email: "o@example.com", Mobile: "2", College: "NRCM", Branch: "ECE", Year: "2"},
				}, nil
			},
		}
		h := NewEventsHandler(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/events/registrations", nil)
		w := serve(h.ListRegistrations, http.MethodGet, "/api/events/registrations", req)

		assert.Equal(t, http.StatusOK, w.Code)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Newest", items[0]["name"])
		assert.Equal(t, "Oldest", items[1]["name"])
	})

	t.Run("empty idea listing returns an empty array", func(t *testing.T) {
		h := NewEventsHandler(&mockEventsUsecase{})

		req := httptest.NewRequest(http.MethodGet, "/api/events/ideas", nil)
		w := serve(h.ListIdeas, http.MethodGet, "/api/events/ideas", req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
