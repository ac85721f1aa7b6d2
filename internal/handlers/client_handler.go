package handlers

import (
	"net/http"

	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("/lead-distribution", h.LeadDistribution)
		clients.POST("/add-lead", h.AddLead)
		clients.GET("/all", h.All)
	}
}

func (h *ClientHandler) LeadDistribution(c *gin.Context) {
	entries, err := h.clientService.Distribution()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *ClientHandler) AddLead(c *gin.Context) {
	var req dto.AddClientLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.clientService.AddLead(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lead added to client successfully",
	})
}

func (h *ClientHandler) All(c *gin.Context) {
	clients, err := h.clientService.All()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
