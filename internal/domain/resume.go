package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateResume = errors.New("resume already exists for this account")
)

const (
	ExperienceFresher     = "Fresher"
	ExperienceExperienced = "Experienced"
)

// Resume is a candidate's single profile record. UserID is the owning
// account; at most one resume exists per owner.
type Resume struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Role       string    `json:"role" validate:"required"`
	Experience string    `json:"experience" validate:"omitempty,oneof=Fresher Experienced"`
	Skills     []string  `json:"skills"`
	Projects   string    `json:"projects"`
	ResumeText string    `json:"resume_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResumeView is the projection returned to clients. The owning account id
// is deliberately omitted.
type ResumeView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	Projects   string   `json:"projects"`
	ResumeText string   `json:"resume_text"`
}

func (r *Resume) View() ResumeView {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeView{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Experience: r.Experience,
		Skills:     skills,
		Projects:   r.Projects,
		ResumeText: r.ResumeText,
	}
}

// ResumeUpdate carries a partial update. Empty strings mean "leave as is"
// for Name/Email/Role/Experience, nil means "leave as is" for Skills.
// Projects and ResumeText are pointers so an explicit empty string can be
// distinguished from an absent field.
type ResumeUpdate struct {
	Name       string
	Email      string
	Role       string
	Experience string
	Skills     []string
	Projects   *string
	ResumeText *string
}

// ResumeFilter is the normalized search filter passed to the store.
// All present parts are ANDed together.
type ResumeFilter struct {
	// Term matches case-insensitively as a substring against name, email,
	// role, projects or resume text.
	Term string
	// Skills matches when the resume has at least one of these exact
	// (case-sensitive) skill strings.
	Skills []string
	// Role matches the whole role string, case-insensitively.
	Role string
	// Experience matches exactly.
	Experience string
}

// ResumeSearchQuery is one search request as received from the client,
// before normalization.
type ResumeSearchQuery struct {
	Term       string
	Skills     string // comma-separated
	Role       string
	Experience string
	Page       int
	PageSize   int
}

type ResumeSearchResult struct {
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
	Items    []ResumeView `json:"items"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByUserID(ctx context.Context, userID string) (*Resume, error)
	GetByIDAndOwner(ctx context.Context, id, userID string) (*Resume, error)
	Update(ctx context.Context, resume *Resume) error
	DeleteByIDAndOwner(ctx context.Context, id, userID string) error
	Search(ctx context.Context, filter ResumeFilter, limit, offset int) ([]Resume, int64, error)
}

type CandidateUsecase interface {
	GetResume(ctx context.Context, userID string) (*Resume, error)
	CreateResume(ctx context.Context, resume *Resume) (string, error)
	UpdateResume(ctx context.Context, id, userID string, update ResumeUpdate) error
	DeleteResume(ctx context.Context, id, userID string) error
}

type SearchUsecase interface {
	SearchResumes(ctx context.Context, query ResumeSearchQuery) (*ResumeSearchResult, error)
}
