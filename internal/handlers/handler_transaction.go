package handlers

import (
	"net/http"

	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/FinRoots/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions,
// including the CSV import pipeline.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	importService      portssvc.ImportSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, is portssvc.ImportSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		importService:      is,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, importService portssvc.ImportSvcFacade) {
	h := newTransactionHandler(transactionService, importService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/bulk-create", h.bulkCreateTransactions)
		transactions.POST("/bulk-delete", h.bulkDeleteTransactions)
		transactions.POST("/import/parse", h.parseImportFile)
		transactions.POST("/import", h.importTransactions)
	}
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Creates a transaction; amount is in miliunits, negative values are expenses
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account or category not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions within a date range, optionally filtered by account. Absent bounds default to the trailing 30 days.
// @Tags transactions
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param accountId query string false "Restrict to one account"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkCreateTransactions godoc
// @Summary Bulk create transactions
// @Description Inserts a batch of transactions atomically
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactions body dto.BulkCreateTransactionsRequest true "Transactions to insert"
// @Success 201 {object} dto.BulkCreateTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/bulk-create [post]
func (h *transactionHandler) bulkCreateTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkCreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.transactionService.BulkCreateTransactions(c.Request.Context(), userID, req.Transactions)
	if err != nil {
		respondError(c, logger, err, "Failed to create transactions")
		return
	}

	c.JSON(http.StatusCreated, dto.BulkCreateTransactionsResponse{CreatedCount: created})
}

// bulkDeleteTransactions godoc
// @Summary Bulk delete transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Transaction IDs"
// @Success 200 {object} dto.BulkDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/bulk-delete [post]
func (h *transactionHandler) bulkDeleteTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.transactionService.BulkDeleteTransactions(c.Request.Context(), userID, req.IDs)
	if err != nil {
		respondError(c, logger, err, "Failed to delete transactions")
		return
	}

	c.JSON(http.StatusOK, dto.BulkDeleteResponse{DeletedCount: deleted})
}

// parseImportFile godoc
// @Summary Parse an uploaded CSV file
// @Description Extracts headers and rows from the uploaded file so the client can build a column mapping
// @Tags transactions
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ParsedGridResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/import/parse [post]
func (h *transactionHandler) parseImportFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing 'file' upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	grid, err := h.importService.ParseCSV(file)
	if err != nil {
		respondError(c, logger, err, "Failed to parse uploaded file")
		return
	}

	c.JSON(http.StatusOK, dto.ParsedGridResponse{Headers: grid.Headers, Body: grid.Body})
}

// importTransactions godoc
// @Summary Import transactions from a mapped grid
// @Description Transforms the mapped grid into transactions on the given account. All rows import or none do.
// @Tags transactions
// @Accept json
// @Produce json
// @Param import body dto.ImportTransactionsRequest true "Grid, mapping and target account"
// @Success 201 {object} dto.ImportTransactionsResponse
// @Failure 400 {object} ErrorResponse "Incomplete mapping or malformed cell"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /transactions/import [post]
func (h *transactionHandler) importTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ImportTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	mapping, err := req.ColumnMapping()
	if err != nil {
		respondError(c, logger, err, "Invalid column mapping")
		return
	}

	imported, err := h.importService.Submit(c.Request.Context(), userID, req.AccountID, req.Grid(), mapping)
	if err != nil {
		respondError(c, logger, err, "Failed to import transactions")
		return
	}

	c.JSON(http.StatusCreated, dto.ImportTransactionsResponse{ImportedCount: imported})
}
