package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/middleware"
)

// DirectoryController handles the read-only listing and aggregation
// endpoints.
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// ListStudents lists all student profiles
// @Summary List students
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummary} "Student list"
// @Router /directory/students [get]
func (c *DirectoryController) ListStudents(ctx *gin.Context) {
	summaries, err := c.directoryService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Students retrieved"))
}

// ListGraduates lists all graduate profiles
// @Summary List graduates
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GraduateSummary} "Graduate list"
// @Router /directory/graduates [get]
func (c *DirectoryController) ListGraduates(ctx *gin.Context) {
	summaries, err := c.directoryService.ListGraduates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Graduates retrieved"))
}

// ListGraduatesByFaculty filters graduates by faculty
// @Summary List graduates by faculty
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param faculty query string true "Faculty name, exact match"
// @Success 200 {object} dto.APIResponse{data=[]dto.GraduateSummary} "Graduate list"
// @Failure 400 {object} dto.APIResponse "Missing faculty parameter"
// @Router /directory/graduates/by-faculty [get]
func (c *DirectoryController) ListGraduatesByFaculty(ctx *gin.Context) {
	summaries, err := c.directoryService.ListGraduatesByFaculty(ctx.Request.Context(), ctx.Query("faculty"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Graduates retrieved"))
}

// ListGraduatesByCompany filters graduates by employer
// @Summary List graduates by company
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param company query string true "Company name, exact match"
// @Success 200 {object} dto.APIResponse{data=[]dto.GraduateSummary} "Graduate list"
// @Failure 400 {object} dto.APIResponse "Missing company parameter"
// @Router /directory/graduates/by-company [get]
func (c *DirectoryController) ListGraduatesByCompany(ctx *gin.Context) {
	summaries, err := c.directoryService.ListGraduatesByCompany(ctx.Request.Context(), ctx.Query("company"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Graduates retrieved"))
}

// ListGraduatesByCareer filters graduates by career position
// @Summary List graduates by career
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param career query string true "Career position, exact match"
// @Success 200 {object} dto.APIResponse{data=[]dto.GraduateSummary} "Graduate list"
// @Failure 400 {object} dto.APIResponse "Missing career parameter"
// @Router /directory/graduates/by-career [get]
func (c *DirectoryController) ListGraduatesByCareer(ctx *gin.Context) {
	summaries, err := c.directoryService.ListGraduatesByCareer(ctx.Request.Context(), ctx.Query("career"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Graduates retrieved"))
}

// ListFaculties lists the distinct faculties across graduate profiles
// @Summary List faculties
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Faculty list"
// @Router /directory/faculties [get]
func (c *DirectoryController) ListFaculties(ctx *gin.Context) {
	values, err := c.directoryService.ListFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(values, "Faculties retrieved"))
}

// ListCompanies lists the distinct employers across graduate profiles
// @Summary List companies
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Company list"
// @Router /directory/companies [get]
func (c *DirectoryController) ListCompanies(ctx *gin.Context) {
	values, err := c.directoryService.ListCompanies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(values, "Companies retrieved"))
}

// ListCareers lists the distinct career positions across graduate profiles
// @Summary List careers
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Career list"
// @Router /directory/careers [get]
func (c *DirectoryController) ListCareers(ctx *gin.Context) {
	values, err := c.directoryService.ListCareers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(values, "Careers retrieved"))
}
