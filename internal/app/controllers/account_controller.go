package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/middleware"
)

// AccountController handles role assignment and lifecycle endpoints
type AccountController struct {
	lifecycleService *services.LifecycleService
	intakeService    *services.IntakeService
}

// NewAccountController creates a new AccountController
func NewAccountController(lifecycleService *services.LifecycleService, intakeService *services.IntakeService) *AccountController {
	return &AccountController{
		lifecycleService: lifecycleService,
		intakeService:    intakeService,
	}
}

// AssignRole handles the one-time role selection
// @Summary Assign account role
// @Description Records the student or graduate role choice. Re-submitting the same role is a no-op; switching roles is rejected.
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRoleRequest true "Role selection"
// @Success 200 {object} dto.APIResponse{data=dto.AssignRoleResponse} "Role assigned"
// @Failure 400 {object} dto.APIResponse "Invalid role or policy not accepted"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Role already assigned"
// @Router /account/role [post]
func (c *AccountController) AssignRole(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingIdentity)
		return
	}

	var req dto.AssignRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.lifecycleService.AssignRole(ctx.Request.Context(), accountID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Role assigned successfully"))
}

// Lifecycle reports the account's onboarding stage
// @Summary Resolve onboarding stage
// @Description Returns whether a role is assigned and which step the frontend should route to next.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LifecycleResponse} "Lifecycle resolved"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /account/lifecycle [get]
func (c *AccountController) Lifecycle(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingIdentity)
		return
	}

	resp, err := c.lifecycleService.ResolveLifecycle(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Lifecycle resolved"))
}

// Me returns the authenticated account's profile summary
// @Summary Current account summary
// @Description Returns the name, email and profile image backing the account menu.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CurrentUserResponse} "Profile summary"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /account/me [get]
func (c *AccountController) Me(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingIdentity)
		return
	}

	resp, err := c.intakeService.CurrentUser(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Profile summary"))
}
