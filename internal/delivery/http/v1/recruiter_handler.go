package v1

import (
	"net/http"
	"strconv"

	"resumer-backend/internal/delivery/http/response"
	"resumer-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	searchUC domain.SearchUsecase
}

func NewRecruiterHandler(protected *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &RecruiterHandler{searchUC: searchUC}

	recruiter := protected.Group("/recruiter")
	{
		recruiter.GET("/search", handler.Search)
	}
}

// Search godoc
// @Summary      Search resumes
// @Description  Filter candidate resumes by free text, skills, role and experience with pagination
// @Tags         recruiter
// @Produce      json
// @Param        q           query     string  false  "Free-text term (substring, case-insensitive)"
// @Param        skills      query     string  false  "Comma-separated skills (any exact match)"
// @Param        role        query     string  false  "Exact role, case-insensitive"
// @Param        experience  query     string  false  "Experience level"  Enums(Fresher, Experienced)
// @Param        page        query     int     false  "Page number"
// @Param        page_size   query     int     false  "Page size (1-50)"
// @Success      200         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Router       /recruiter/search [get]
// @Security     BearerAuth
func (h *RecruiterHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "5"))

	query := domain.ResumeSearchQuery{
		Term:       c.Query("q"),
		Skills:     c.Query("skills"),
		Role:       c.Query("role"),
		Experience: c.Query("experience"),
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.searchUC.SearchResumes(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Search results", result)
}
