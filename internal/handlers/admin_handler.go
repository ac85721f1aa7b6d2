package handlers

import (
	"net/http"

	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	authService   services.AuthService
	searchService services.SearchService
}

func NewAdminHandler(
	base *BaseHandler,
	authService services.AuthService,
	searchService services.SearchService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		authService:   authService,
		searchService: searchService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.POST("/search-leads", h.SearchLeads)
		admin.POST("/reset-password", h.ResetPassword)
	}
}

// SearchLeads queries the pending and assigned stores together.
func (h *AdminHandler) SearchLeads(c *gin.Context) {
	var req dto.AdminSearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	results, err := h.searchService.AdminSearch(req.SearchCriteria, req.SearchValue)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req dto.AdminResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Email, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}
