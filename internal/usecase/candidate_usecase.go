package usecase

import (
	"context"
	"errors"
	"time"

	"resumer-backend/internal/domain"
	"resumer-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
}

func NewCandidateUsecase(resumeRepo domain.ResumeRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		resumeRepo: resumeRepo,
		validate:   validate,
	}
}

// GetResume returns the caller's own resume, or nil when none exists yet.
func (u *candidateUsecase) GetResume(ctx context.Context, userID string) (*domain.Resume, error) {
	if err := requireOwner(ctx, userID); err != nil {
		return nil, err
	}
	return u.resumeRepo.GetByUserID(ctx, userID)
}

func (u *candidateUsecase) CreateResume(ctx context.Context, resume *domain.Resume) (string, error) {
	if err := requireOwner(ctx, resume.UserID); err != nil {
		return "", err
	}

	if err := u.validate.Struct(resume); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	existing, err := u.resumeRepo.GetByUserID(ctx, resume.UserID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict("You already have a resume. Use update instead.")
	}

	if resume.Experience == "" {
		resume.Experience = domain.ExperienceFresher
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}

	now := time.Now()
	resume.ID = uuid.NewString()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		if errors.Is(err, domain.ErrDuplicateResume) {
			return "", apperror.Conflict("You already have a resume. Use update instead.")
		}
		return "", err
	}
	return resume.ID, nil
}

func (u *candidateUsecase) UpdateResume(ctx context.Context, id, userID string, update domain.ResumeUpdate) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}

	resume, err := u.resumeRepo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	if resume == nil {
		return apperror.NotFound("Resume not found")
	}

	// Only provided fields overwrite existing ones. Projects and the resume
	// body accept an explicit empty string; the rest skip on empty.
	if update.Name != "" {
		resume.Name = update.Name
	}
	if update.Email != "" {
		resume.Email = update.Email
	}
	if update.Role != "" {
		resume.Role = update.Role
	}
	if update.Experience != "" {
		resume.Experience = update.Experience
	}
	if update.Skills != nil {
		resume.Skills = update.Skills
	}
	if update.Projects != nil {
		resume.Projects = *update.Projects
	}
	if update.ResumeText != nil {
		resume.ResumeText = *update.ResumeText
	}
	resume.UpdatedAt = time.Now()

	if err := u.validate.Struct(resume); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) DeleteResume(ctx context.Context, id, userID string) error {
	if err := requireOwner(ctx, userID); err != nil {
		return err
	}

	if err := u.resumeRepo.DeleteByIDAndOwner(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

// requireOwner verifies the context identity matches the target owner
// (IDOR prevention).
func requireOwner(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only manage your own resume")
	}
	return nil
}
