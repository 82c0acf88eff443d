package usecase

import (
	"context"
	"strings"

	"resumer-backend/internal/domain"
)

const (
	defaultPageSize = 5
	maxPageSize     = 50
)

type searchUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewSearchUsecase(resumeRepo domain.ResumeRepository) domain.SearchUsecase {
	return &searchUsecase{resumeRepo: resumeRepo}
}

// SearchResumes runs a recruiter search. Pagination is clamped (page >= 1,
// page size 1..50, default 5), the skills CSV is normalized, and the total
// always reflects the full match count before pagination. Results are
// ordered newest-created first and the ordering is stable across pages.
func (u *searchUsecase) SearchResumes(ctx context.Context, query domain.ResumeSearchQuery) (*domain.ResumeSearchResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := domain.ResumeFilter{
		Term:       strings.TrimSpace(query.Term),
		Skills:     splitSkills(query.Skills),
		Role:       strings.TrimSpace(query.Role),
		Experience: strings.TrimSpace(query.Experience),
	}

	offset := (page - 1) * pageSize
	resumes, total, err := u.resumeRepo.Search(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ResumeView, 0, len(resumes))
	for i := range resumes {
		items = append(items, resumes[i].View())
	}

	return &domain.ResumeSearchResult{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}, nil
}

// splitSkills parses the comma-separated skills parameter: split, trim,
// drop empty tokens. An empty result imposes no constraint.
func splitSkills(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
