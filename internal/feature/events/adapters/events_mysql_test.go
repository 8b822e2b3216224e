package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hackathon_backend/internal/feature/events/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Registration{}, &entity.Idea{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedRegistration(t *testing.T, db *gorm.DB, name string, createdAt time.Time) {
	t.Helper()

	reg := &entity.Registration{
		Name:      name,
		Email:     name + "@example.com",
		Mobile:    "9876543210",
		College:   "NRCM",
		Branch:    "CSE",
		Year:      "3rd Year",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(reg).Error)
}

func TestRegistrationMySQL_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationMySQL(db)

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	seedRegistration(t, db, "oldest", base)
	seedRegistration(t, db, "middle", base.Add(time.Hour))
	seedRegistration(t, db, "newest", base.Add(2*time.Hour))

	regs, err := repo.ListNewestFirst(context.Background())

	require.NoError(t, err)
	require.Len(t, regs, 3)
	assert.Equal(t, "newest", regs[0].Name)
	assert.Equal(t, "middle", regs[1].Name)
	assert.Equal(t, "oldest", regs[2].Name)
}

func TestRegistrationMySQL_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationMySQL(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedRegistration(t, db, "first", time.Now())
	seedRegistration(t, db, "second", time.Now())

	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Counting again without a new registration returns the same value.
	again, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, count, again)
}

func TestIdeaMySQL_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdeaMySQL(db)

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	first := &entity.Idea{
		ProjectTitle:        "Crop Doctor",
		TeamName:            "AgriTech",
		LeaderEmail:         "lead1@example.com",
		Theme:               "Agriculture",
		ProblemStatement:    "Crop disease identified too late.",
		SolutionDescription: "Leaf-photo diagnosis app.",
		TechStack:           "Go, TensorFlow",
		Status:              entity.StatusPending,
		CreatedAt:           base,
	}
	second := &entity.Idea{
		ProjectTitle:        "Smart Attendance",
		TeamName:            "Bitwise",
		LeaderEmail:         "lead2@example.com",
		Theme:               "EdTech",
		ProblemStatement:    "Manual attendance wastes lecture time.",
		SolutionDescription: "Face-recognition check-in.",
		TechStack:           "Go, React",
		Status:              entity.StatusPending,
		AttachmentPath:      "uploads/deck.pptx",
		AttachmentName:      "deck.pptx",
		AttachmentType:      "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		AttachmentSize:      4 << 20,
		CreatedAt:           base.Add(time.Hour),
	}

	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), second))

	ideas, err := repo.ListNewestFirst(context.Background())

	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Smart Attendance", ideas[0].ProjectTitle)
	assert.Equal(t, "deck.pptx", ideas[0].AttachmentName)
	assert.Equal(t, int64(4<<20), ideas[0].AttachmentSize)
	assert.Equal(t, "Crop Doctor", ideas[1].ProjectTitle)
}
