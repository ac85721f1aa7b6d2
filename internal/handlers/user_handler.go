package handlers

import (
	"net/http"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/create", h.Create)
		users.GET("/search", h.Search)
		users.GET("/recruiters", h.ListRecruiters)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.POST("/reset-password", h.ResetPassword)
		users.GET("/get-active-leads/:recruiterId", h.GetActiveLeads)
		users.GET("/get-inactive-leads/:recruiterId", h.GetInactiveLeads)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Search(c *gin.Context) {
	criteria := c.Query("criteria")
	value := c.Query("value")
	if criteria == "" || value == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("criteria and value are required"))
		return
	}

	user, err := h.userService.Search(criteria, value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListRecruiters(c *gin.Context) {
	recruiters, err := h.userService.ListRecruiters()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recruiters)
}

func (h *UserHandler) Update(c *gin.Context) {
	recruiterID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(recruiterID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	recruiterID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(recruiterID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ResetPassword(req.RecruiterID, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) GetActiveLeads(c *gin.Context) {
	recruiterID, ok := h.RequireParam(c, "recruiterId")
	if !ok {
		return
	}

	leads, err := h.userService.GetActiveLeads(recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

func (h *UserHandler) GetInactiveLeads(c *gin.Context) {
	recruiterID, ok := h.RequireParam(c, "recruiterId")
	if !ok {
		return
	}

	leads, err := h.userService.GetInactiveLeads(recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}
