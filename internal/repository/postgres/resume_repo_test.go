package postgres

import (
	"testing"

	"resumer-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeFilter(t *testing.T) {
	t.Run("empty filter produces no WHERE clause", func(t *testing.T) {
		where, args := buildResumeFilter(domain.ResumeFilter{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("free-text term ORs across all text fields", func(t *testing.T) {
		where, args := buildResumeFilter(domain.ResumeFilter{Term: "backend"})
		assert.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1 OR role ILIKE $1 OR projects ILIKE $1 OR resume_text ILIKE $1)", where)
		assert.Equal(t, []any{"%backend%"}, args)
	})

	t.Run("role matches the whole string case-insensitively", func(t *testing.T) {
		where, args := buildResumeFilter(domain.ResumeFilter{Role: "Backend Engineer"})
		assert.Equal(t, " WHERE LOWER(role) = LOWER($1)", where)
		assert.Len(t, args, 1)
	})

	t.Run("all filters are ANDed in order", func(t *testing.T) {
		where, args := buildResumeFilter(domain.ResumeFilter{
			Term:       "go",
			Skills:     []string{"Go", "SQL"},
			Role:       "Backend Engineer",
			Experience: "Fresher",
		})
		assert.Equal(t,
			" WHERE (name ILIKE $1 OR email ILIKE $1 OR role ILIKE $1 OR projects ILIKE $1 OR resume_text ILIKE $1)"+
				" AND skills && $2 AND LOWER(role) = LOWER($3) AND experience = $4",
			where)
		assert.Len(t, args, 4)
		assert.Equal(t, "%go%", args[0])
		assert.Equal(t, "Backend Engineer", args[2])
		assert.Equal(t, "Fresher", args[3])
	})

	t.Run("skills alone bind a single array argument", func(t *testing.T) {
		where, args := buildResumeFilter(domain.ResumeFilter{Skills: []string{"Go"}})
		assert.Equal(t, " WHERE skills && $1", where)
		assert.Len(t, args, 1)
	})
}

func TestEscapeLikePattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{"%_\\", `\%\_\\`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLikePattern(tc.in), "input %q", tc.in)
	}
}
