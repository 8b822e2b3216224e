// Package dto defines data transfer objects for the events feature's HTTP
// transport layer.
package dto

import "time"

// RegistrationReq represents the request body for POST /api/events/register.
type RegistrationReq struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Mobile      string `json:"mobile" form:"mobile" binding:"required"`
	College     string `json:"college" form:"college" binding:"required"`
	Branch      string `json:"branch" form:"branch" binding:"required"`
	Year        string `json:"year" form:"year" binding:"required"`
	TeamName    string `json:"teamName" form:"teamName"`
	TeamMembers string `json:"teamMembers" form:"teamMembers"`
}

// IdeaReq represents the multipart form fields for POST /api/events/idea.
// The optional attachment travels as the "ppt" file part.
type IdeaReq struct {
	ProjectTitle        string `form:"projectTitle" binding:"required"`
	TeamName            string `form:"teamName" binding:"required"`
	LeaderEmail         string `form:"leaderEmail" binding:"required,email"`
	Theme               string `form:"theme" binding:"required"`
	ProblemStatement    string `form:"problemStatement" binding:"required"`
	SolutionDescription string `form:"solutionDescription" binding:"required"`
	TechStack           string `form:"techStack" binding:"required"`
}

// RegistrationItem is one registration in the admin listing response.
type RegistrationItem struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	College     string    `json:"college"`
	Branch      string    `json:"branch"`
	Year        string    `json:"year"`
	TeamName    string    `json:"teamName,omitempty"`
	TeamMembers string    `json:"teamMembers,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IdeaItem is one idea submission in the admin listing response.
type IdeaItem struct {
	ID                  uint      `json:"id"`
	ProjectTitle        string    `json:"projectTitle"`
	TeamName            string    `json:"teamName"`
	LeaderEmail         string    `json:"leaderEmail"`
	Theme               string    `json:"theme"`
	ProblemStatement    string    `json:"problemStatement"`
	SolutionDescription string    `json:"solutionDescription"`
	TechStack           string    `json:"techStack"`
	Status              string    `json:"status"`
	AttachmentName      string    `json:"attachmentName,omitempty"`
	AttachmentType      string    `json:"attachmentType,omitempty"`
	AttachmentSize      int64     `json:"attachmentSize,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
