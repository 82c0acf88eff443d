package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resumer-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const resumeColumns = `id, user_id, name, email, role, experience, skills, projects, resume_text, created_at, updated_at`

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (id, user_id, name, email, role, experience, skills, projects, resume_text, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.Name, resume.Email, resume.Role,
		resume.Experience, pq.Array(resume.Skills), resume.Projects, resume.ResumeText,
		resume.CreatedAt, resume.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateResume
		}
		return err
	}
	return nil
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *resumeRepo) GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, query, id, userID)
}

func (r *resumeRepo) getOne(ctx context.Context, query string, args ...any) (*domain.Resume, error) {
	var resume domain.Resume
	var skills []string
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&resume.ID, &resume.UserID, &resume.Name, &resume.Email, &resume.Role,
		&resume.Experience, pq.Array(&skills), &resume.Projects, &resume.ResumeText,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	resume.Skills = skills
	return &resume, nil
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `UPDATE resumes SET
		name = $3,
		email = $4,
		role = $5,
		experience = $6,
		skills = $7,
		projects = $8,
		resume_text = $9,
		updated_at = $10
	WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.Name, resume.Email, resume.Role,
		resume.Experience, pq.Array(resume.Skills), resume.Projects, resume.ResumeText,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) DeleteByIDAndOwner(ctx context.Context, id, userID string) error {
	// Scoping the delete by owner merges "not found" and "not yours" into
	// a single outcome, so record existence is never leaked.
	query := `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Search(ctx context.Context, filter domain.ResumeFilter, limit, offset int) ([]domain.Resume, int64, error) {
	where, args := buildResumeFilter(filter)

	query := fmt.Sprintf(`SELECT `+resumeColumns+` FROM resumes%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		var skills []string
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Name, &resume.Email, &resume.Role,
			&resume.Experience, pq.Array(&skills), &resume.Projects, &resume.ResumeText,
			&resume.CreatedAt, &resume.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		resume.Skills = skills
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return resumes, total, nil
}

// buildResumeFilter composes the WHERE clause for a search. All present
// filters are ANDed; the free-text term ORs across the text fields.
func buildResumeFilter(filter domain.ResumeFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Term != "" {
		args = append(args, "%"+escapeLikePattern(filter.Term)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR role ILIKE $%d OR projects ILIKE $%d OR resume_text ILIKE $%d)",
			n, n, n, n, n))
	}
	if len(filter.Skills) > 0 {
		// Array overlap: at least one exact, case-sensitive skill match.
		args = append(args, pq.Array(filter.Skills))
		conds = append(conds, fmt.Sprintf("skills && $%d", len(args)))
	}
	if filter.Role != "" {
		// Whole-string match, case-insensitive. Not a substring.
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("LOWER(role) = LOWER($%d)", len(args)))
	}
	if filter.Experience != "" {
		args = append(args, filter.Experience)
		conds = append(conds, fmt.Sprintf("experience = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied text
// so the term is always matched literally.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
