package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
)

// PurchasingHandler maneja las peticiones HTTP de órdenes de compra.
type PurchasingHandler struct {
	uc *usecase.PurchasingUseCase
}

// NewPurchasingHandler construye el handler.
func NewPurchasingHandler(uc *usecase.PurchasingUseCase) *PurchasingHandler {
	return &PurchasingHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  entity.PurchaseOrder
// @Router       /api/purchases [get]
func (h *PurchasingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.PurchaseOrders(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Orden"
// @Success      201   {object}  entity.PurchaseOrder
// @Router       /api/purchases [post]
func (h *PurchasingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreatePurchaseOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "Cambios; responsibleId es requerido al recibir"
// @Success      200   {object}  entity.PurchaseOrder
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [put]
func (h *PurchasingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdatePurchaseOrder(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
