package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gametrade/internal/models/request_models"
	"gametrade/internal/services"
	"gametrade/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

// CreateTransaction godoc
// @Summary Start a purchase against a listing
// @Description Creates the transaction, registers a payment intent with the
// gateway and reserves the listing. Returns the client secret the buyer's
// payment UI needs to finish authorizing the charge.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body request_models.CreateTransactionRequest true "Purchase payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions [post]
func (t *TransactionController) CreateTransaction(c *gin.Context) {
	var req request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	buyerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	checkout, err := t.transactionService.CreateTransaction(c.Request.Context(), buyerID, listingID, req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, checkout, "Transaction created successfully")
}

func (t *TransactionController) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	txn, err := t.transactionService.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction fetched successfully")
}

func (t *TransactionController) ListTransactions(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	txns, err := t.transactionService.ListForUser(c.Request.Context(), requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}

// UpdateStatus godoc
// @Summary Transition a transaction to COMPLETED or CANCELLED
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request_models.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions/{id}/status [patch]
func (t *TransactionController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req request_models.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	txn, err := t.transactionService.UpdateStatus(c.Request.Context(), id, requesterID, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction status updated")
}
