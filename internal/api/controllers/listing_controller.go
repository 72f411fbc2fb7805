package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gametrade/internal/models/request_models"
	"gametrade/internal/services"
	"gametrade/pkg/utils"
)

type ListingController struct {
	listingService services.ListingServiceInterface
}

func NewListingController(listingService services.ListingServiceInterface) *ListingController {
	return &ListingController{listingService: listingService}
}

// CreateListing godoc
// @Summary Create a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body request_models.CreateListingRequest true "Listing payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /listings [post]
func (l *ListingController) CreateListing(c *gin.Context) {
	var req request_models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ownerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	listing, err := l.listingService.CreateListing(c.Request.Context(), ownerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, listing, "Listing created successfully")
}

func (l *ListingController) GetListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := l.listingService.GetListing(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listing, "Listing fetched successfully")
}

func (l *ListingController) ListListings(c *gin.Context) {
	filter := request_models.ListingFilter{
		GameID:        c.Query("game_id"),
		ServiceTypeID: c.Query("service_type_id"),
		Status:        c.Query("status"),
		Sort:          c.DefaultQuery("sort", "newest"),
	}

	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid min_price")
			return
		}
		filter.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_price")
			return
		}
		filter.MaxPrice = &p
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	listings, err := l.listingService.ListListings(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listings, "Listings fetched successfully")
}

func (l *ListingController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	var req request_models.UpdateListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	listing, err := l.listingService.UpdateStatus(c.Request.Context(), id, requesterID, c.GetString("Role"), req.Status, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listing, "Listing status updated")
}
