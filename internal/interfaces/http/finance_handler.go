package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
)

// FinanceHandler maneja las peticiones HTTP de transacciones y
// presupuestos.
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// ListTransactions godoc
// @Summary      Listar transacciones financieras
// @Tags         finance
// @Produce      json
// @Success      200  {array}  entity.FinancialTransaction
// @Router       /api/finance/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.uc.Transactions(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTransaction godoc
// @Summary      Registrar transacción manual
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Transacción"
// @Success      201   {object}  entity.FinancialTransaction
// @Router       /api/finance/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateTransaction(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTransaction godoc
// @Summary      Actualizar transacción
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "Cambios"
// @Success      200   {object}  entity.FinancialTransaction
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{id} [put]
func (h *FinanceHandler) UpdateTransaction(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateTransaction(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBudgets godoc
// @Summary      Listar presupuestos
// @Tags         finance
// @Produce      json
// @Success      200  {array}  entity.Budget
// @Router       /api/finance/budgets [get]
func (h *FinanceHandler) ListBudgets(c *fiber.Ctx) error {
	out, err := h.uc.Budgets(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
