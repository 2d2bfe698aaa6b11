package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// transactionHandler handles payments and expenses.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	expenseService     portssvc.ExpenseSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, es portssvc.ExpenseSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts, expenseService: es}
}

// registerTransactionRoutes registers payment and expense routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, es portssvc.ExpenseSvcFacade) {
	h := newTransactionHandler(ts, es)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("", h.createTransaction)   // Caja or admin
		transactions.PUT("/:id", h.updateTransaction) // Caja or admin
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("", h.createExpense)   // Caja or admin
		expenses.PUT("/:id", h.updateExpense) // Caja or admin
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// listTransactions godoc
// @Summary List payments
// @Tags transactions
// @Produce json
// @Param serviceID query string false "Service ID"
// @Param estado query string false "Payment state"
// @Param metodo query string false "Payment method"
// @Param desde query string false "Date lower bound (YYYY-MM-DD)"
// @Param hasta query string false "Date upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), auth, query.ToTransactionFilter())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns))
}

// getTransaction godoc
// @Summary Get a payment
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// createTransaction godoc
// @Summary Record a payment
// @Description Records a payment against a case. Caja or admin.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Payment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a payment
// @Description Updates a payment; PaidAt is stamped on a transition into pagado. Caja or admin.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a payment
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param categoria query string false "Category"
// @Param supplierID query string false "Supplier ID"
// @Param serviceID query string false "Service ID"
// @Param estadoFactura query string false "Invoice state"
// @Param desde query string false "Date lower bound (YYYY-MM-DD)"
// @Param hasta query string false "Date upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *transactionHandler) listExpenses(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), auth, query.ToExpenseFilter())
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *transactionHandler) getExpense(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an outgoing cost. Caja or admin.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /expenses [post]
func (h *transactionHandler) createExpense(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *transactionHandler) updateExpense(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *transactionHandler) deleteExpense(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
