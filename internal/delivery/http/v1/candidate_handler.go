package v1

import (
	"net/http"

	"resumer-backend/internal/delivery/http/response"
	"resumer-backend/internal/domain"
	"resumer-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidate := protected.Group("/candidate")
	{
		candidate.GET("/resume", handler.GetResume)
		candidate.POST("/resume", handler.CreateResume)
		candidate.PUT("/resume/:id", handler.UpdateResume)
		candidate.DELETE("/resume/:id", handler.DeleteResume)
	}
}

type CreateResumeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Role       string   `json:"role" binding:"required"`
	Experience string   `json:"experience" binding:"omitempty,oneof=Fresher Experienced"`
	Skills     []string `json:"skills"`
	Projects   string   `json:"projects"`
	ResumeText string   `json:"resume_text"`
}

// UpdateResumeRequest is a partial update. Projects and ResumeText are
// pointers so an explicit empty string clears the field while an absent
// field leaves it untouched.
type UpdateResumeRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email" binding:"omitempty,email"`
	Role       string   `json:"role"`
	Experience string   `json:"experience" binding:"omitempty,oneof=Fresher Experienced"`
	Skills     []string `json:"skills"`
	Projects   *string  `json:"projects"`
	ResumeText *string  `json:"resume_text"`
}

// GetResume godoc
// @Summary      Get own resume
// @Description  Return the caller's resume, or null when none exists
// @Tags         candidate
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidate/resume [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resume, err := h.candidateUC.GetResume(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if resume == nil {
		response.Success(c, http.StatusOK, "No resume yet", nil)
		return
	}

	response.Success(c, http.StatusOK, "Resume", resume.View())
}

// CreateResume godoc
// @Summary      Create own resume
// @Description  Create the caller's resume; fails if one already exists
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        resume  body      CreateResumeRequest  true  "Resume fields"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /candidate/resume [post]
// @Security     BearerAuth
func (h *CandidateHandler) CreateResume(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	resume := &domain.Resume{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Experience: req.Experience,
		Skills:     req.Skills,
		Projects:   req.Projects,
		ResumeText: req.ResumeText,
	}

	id, err := h.candidateUC.CreateResume(c.Request.Context(), resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", gin.H{"id": id})
}

// UpdateResume godoc
// @Summary      Update own resume
// @Description  Partially update the caller's resume
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Resume ID"
// @Param        resume  body      UpdateResumeRequest  true  "Fields to update"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /candidate/resume/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateResume(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	update := domain.ResumeUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Experience: req.Experience,
		Skills:     req.Skills,
		Projects:   req.Projects,
		ResumeText: req.ResumeText,
	}

	if err := h.candidateUC.UpdateResume(c.Request.Context(), c.Param("id"), userID, update); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", nil)
}

// DeleteResume godoc
// @Summary      Delete own resume
// @Description  Delete the caller's resume
// @Tags         candidate
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/resume/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.candidateUC.DeleteResume(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
