package handlers

import (
	"net/http"

	"skillbridge_backend/internal/middleware"
	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/services"
	"skillbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	*BaseHandler
	bidService services.BidService
}

func NewBidHandler(base *BaseHandler, bidService services.BidService) *BidHandler {
	return &BidHandler{
		BaseHandler: base,
		bidService:  bidService,
	}
}

func (h *BidHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bids := rg.Group("/bids")
	{
		bids.GET("/project/:projectId", h.ListByProject)
	}

	authed := rg.Group("/bids")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", middleware.RoleMiddleware(models.UserRoleStudent), h.Submit)
		authed.GET("/my", middleware.RoleMiddleware(models.UserRoleStudent), h.ListMy)
		authed.PUT("/:id/accept", middleware.RoleMiddleware(models.UserRoleBusiness), h.Accept)
		authed.PUT("/:id/reject", middleware.RoleMiddleware(models.UserRoleBusiness), h.Reject)
	}
}

func (h *BidHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBidRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.bidService.Submit(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BidHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.bidService.ListMy(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BidHandler) ListByProject(c *gin.Context) {
	projectID, ok := h.RequireParam(c, "projectId")
	if !ok {
		return
	}

	resp, err := h.bidService.ListByProject(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BidHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	bidID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.bidService.Accept(bidID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BidHandler) Reject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	bidID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.bidService.Reject(bidID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
