package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"resumer-backend/config"
	"resumer-backend/internal/domain"
	"resumer-backend/internal/repository/postgres"
	"resumer-backend/pkg/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var demoRoles = []string{
	"Backend Engineer", "Frontend Engineer", "Data Analyst",
	"DevOps Engineer", "QA Engineer",
}

var demoSkills = [][]string{
	{"Go", "SQL", "Docker"},
	{"JavaScript", "React", "CSS"},
	{"Python", "SQL", "Pandas"},
	{"Kubernetes", "Terraform", "AWS"},
	{"Selenium", "Java", "TestNG"},
}

func main() {
	var candidates int
	var recruiters int

	flag.IntVar(&candidates, "candidates", 10, "number of demo candidate accounts (each with a resume)")
	flag.IntVar(&recruiters, "recruiters", 2, "number of demo recruiter accounts")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	ctx := context.Background()

	// All demo accounts share one password so the hash is computed once.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash demo password", "error", err)
		os.Exit(1)
	}

	for i := 0; i < candidates; i++ {
		now := time.Now()
		user := &domain.User{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("Demo Candidate %d", i+1),
			Email:        fmt.Sprintf("candidate%d@example.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleCandidate,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Warn("Skipping candidate", "email", user.Email, "error", err)
			continue
		}

		pick := rand.Intn(len(demoRoles))
		experience := domain.ExperienceFresher
		if rand.Intn(2) == 1 {
			experience = domain.ExperienceExperienced
		}
		resume := &domain.Resume{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       demoRoles[pick],
			Experience: experience,
			Skills:     demoSkills[pick],
			Projects:   fmt.Sprintf("Demo project portfolio for %s work.", demoRoles[pick]),
			ResumeText: fmt.Sprintf("%s with hands-on %s experience.", demoRoles[pick], demoSkills[pick][0]),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := resumeRepo.Create(ctx, resume); err != nil {
			logger.Warn("Failed to create resume", "email", user.Email, "error", err)
		}
	}

	for i := 0; i < recruiters; i++ {
		now := time.Now()
		user := &domain.User{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("Demo Recruiter %d", i+1),
			Email:        fmt.Sprintf("recruiter%d@example.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleRecruiter,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Warn("Skipping recruiter", "email", user.Email, "error", err)
		}
	}

	logger.Info("Seeding complete", "candidates", candidates, "recruiters", recruiters)
}
