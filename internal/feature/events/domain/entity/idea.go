package entity

import "time"

// StatusPending is the initial review status of a submitted idea.
const StatusPending = "Pending"

// Idea is one project idea submission, optionally carrying a pitch attachment.
type Idea struct {
	ID uint `gorm:"primaryKey"`

	ProjectTitle        string `gorm:"size:255;not null"`
	TeamName            string `gorm:"size:255;not null"`
	LeaderEmail         string `gorm:"size:255;not null"`
	Theme               string `gorm:"size:255;not null"`
	ProblemStatement    string `gorm:"type:text;not null"`
	SolutionDescription string `gorm:"type:text;not null"`
	TechStack           string `gorm:"type:text;not null"`

	Status string `gorm:"size:32;not null;default:Pending"`

	// Attachment metadata, empty when no file was submitted. The original
	// file name, content type and size are persisted exactly as received.
	AttachmentPath string `gorm:"size:512"`
	AttachmentName string `gorm:"size:255"`
	AttachmentType string `gorm:"size:128"`
	AttachmentSize int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment is the stored-file metadata produced by the attachment store.
type Attachment struct {
	// Path is where the file was stored on the server.
	Path string
	// Name is the original client-supplied file name.
	Name string
	// ContentType is the MIME type as received.
	ContentType string
	// Size is the file size in bytes.
	Size int64
}
