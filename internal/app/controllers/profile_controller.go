package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/middleware"
)

// profileImageField is the multipart field name the frontend uses for the
// optional profile picture.
const profileImageField = "profileImage"

// ProfileController handles the one-time intake form submissions
type ProfileController struct {
	intakeService *services.IntakeService
}

// NewProfileController creates a new ProfileController
func NewProfileController(intakeService *services.IntakeService) *ProfileController {
	return &ProfileController{
		intakeService: intakeService,
	}
}

// SubmitStudent handles the student intake form
// @Summary Submit student profile
// @Description Stores the student profile form with an optional image upload. Each account submits at most once.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param full_name formData string true "Full name"
// @Param studentId formData string true "Institution-assigned student id"
// @Param profileImage formData file false "Profile picture (png, jpg, jpeg, gif)"
// @Success 201 {object} dto.APIResponse{data=dto.IntakeResponse} "Profile created"
// @Failure 400 {object} dto.APIResponse "Validation failure or malformed date"
// @Failure 409 {object} dto.APIResponse "Profile already exists"
// @Failure 502 {object} dto.APIResponse "Image storage unavailable"
// @Router /profiles/student [post]
func (c *ProfileController) SubmitStudent(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingIdentity)
		return
	}

	var req dto.StudentIntakeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, closeImage, err := openImageUpload(formFile(ctx, profileImageField))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer closeImage()

	resp, err := c.intakeService.SubmitStudentProfile(ctx.Request.Context(), accountID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Student profile created"))
}

// SubmitGraduate handles the graduate intake form
// @Summary Submit graduate profile
// @Description Stores the graduate profile form, including internship and career sections, with an optional image upload.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param full_name formData string true "Full name"
// @Param studentId formData string true "Institution-assigned student id"
// @Param profileImage formData file false "Profile picture (png, jpg, jpeg, gif)"
// @Success 201 {object} dto.APIResponse{data=dto.IntakeResponse} "Profile created"
// @Failure 400 {object} dto.APIResponse "Validation failure or malformed date"
// @Failure 409 {object} dto.APIResponse "Profile already exists"
// @Failure 502 {object} dto.APIResponse "Image storage unavailable"
// @Router /profiles/graduate [post]
func (c *ProfileController) SubmitGraduate(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingIdentity)
		return
	}

	var req dto.GraduateIntakeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, closeImage, err := openImageUpload(formFile(ctx, profileImageField))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer closeImage()

	resp, err := c.intakeService.SubmitGraduateProfile(ctx.Request.Context(), accountID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Graduate profile created"))
}
