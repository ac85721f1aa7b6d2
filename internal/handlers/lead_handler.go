package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/config"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	*BaseHandler
	leadService      services.LeadService
	importService    services.ImportService
	searchService    services.SearchService
	dashboardService services.DashboardService
}

func NewLeadHandler(
	base *BaseHandler,
	leadService services.LeadService,
	importService services.ImportService,
	searchService services.SearchService,
	dashboardService services.DashboardService,
) *LeadHandler {
	return &LeadHandler{
		BaseHandler:      base,
		leadService:      leadService,
		importService:    importService,
		searchService:    searchService,
		dashboardService: dashboardService,
	}
}

func (h *LeadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("/leads")
	{
		leads.GET("/pending-leads", h.PendingLeads)
		leads.GET("/dashboard-stats", h.DashboardStats)
		leads.POST("/assign-lead/:rid", h.AssignLead)
		leads.PUT("/update-lead/:id", h.UpdateLead)
		leads.PUT("/add-followup/:id", h.AddFollowUp)
		leads.POST("/bulk-upload", h.BulkUpload)
		leads.POST("/search", h.Search)
		leads.GET("/:searchLeadId", h.GetByLeadID)
	}
}

func (h *LeadHandler) PendingLeads(c *gin.Context) {
	leads, err := h.leadService.PendingLeads()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *LeadHandler) AssignLead(c *gin.Context) {
	recruiterID, ok := h.RequireParam(c, "rid")
	if !ok {
		return
	}

	assigned, err := h.leadService.Assign(recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assigned)
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) AddFollowUp(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.FollowUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lead, err := h.leadService.AddFollowUp(id, req.FollowUpText)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) BulkUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrEmptyUpload)
		return
	}
	defer file.Close()

	if maxSize := config.GetConfig().Import.MaxFileSize; maxSize > 0 && header.Size > maxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the maximum upload size"))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		apperrors.HandleError(c, apperrors.ErrUnsupportedFile)
		return
	}

	result, err := h.importService.BulkImport(file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *LeadHandler) Search(c *gin.Context) {
	var req dto.RecruiterSearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	leads, err := h.searchService.RecruiterSearch(req.RecruiterID, req.SearchCriteria, req.SearchValue)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByLeadID(c *gin.Context) {
	leadID, ok := h.RequireParam(c, "searchLeadId")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByLeadID(leadID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}
