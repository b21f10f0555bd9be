package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/middleware"
	"github.com/example/pepine/internal/services"
	"github.com/example/pepine/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
	Status     string  `json:"status"`
}

// Create places an order for the authenticated user.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	order, err := h.orders.Create(user, services.OrderInput{
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "Order created successfully.",
		"orderId": order.ID,
	})
}

type addOrderProductRequest struct {
	ProductID      string   `json:"product_id" validate:"required,uuid"`
	OrderID        string   `json:"order_id" validate:"required,uuid"`
	Quantity       float64  `json:"quantity" validate:"required,gt=0"`
	PriceTimeOrder *float64 `json:"price_time_order" validate:"omitempty,gt=0"`
	VAT            *float64 `json:"vat" validate:"omitempty,gte=0,lte=100"`
}

// AddProduct appends a product line to an existing order.
func (h *OrderHandler) AddProduct(c *fiber.Ctx) error {
	var req addOrderProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return apperrors.BadRequestf("invalid product_id")
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return apperrors.BadRequestf("invalid order_id")
	}

	line, err := h.orders.AddProduct(services.OrderLineInput{
		ProductID:      productID,
		OrderID:        orderID,
		Quantity:       req.Quantity,
		PriceTimeOrder: req.PriceTimeOrder,
		VAT:            req.VAT,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "Order line created successfully.",
		"orderId": line.OrderID,
	})
}

// List returns the denormalized admin view of orders, filtered by status
// set (defaulting to the active statuses).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 15)

	page, err := h.orders.List(parseStatuses(c), pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":      fiber.StatusOK,
		"message":     "Orders retrieved successfully.",
		"orders":      page.Orders,
		"totalOrders": page.TotalOrders,
		"totalPages":  page.TotalPages,
	})
}

// ListByUser returns one user's orders; a plain user may only read their
// own.
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	if !current.IsAdmin() && current.ID != id {
		return apperrors.Forbiddenf("you do not have permission to read these orders")
	}

	pg := utils.ParsePagination(c, 15)

	page, err := h.orders.ListByUser(id, pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":      fiber.StatusOK,
		"message":     "Orders retrieved successfully.",
		"orders":      page.Orders,
		"totalOrders": page.TotalOrders,
		"totalPages":  page.TotalPages,
	})
}

// Get returns one order with its denormalized view.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	order, err := h.orders.Get(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Order retrieved successfully.",
		"order":   order,
	})
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// Update changes an order's status.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	var req updateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	order, err := h.orders.UpdateStatus(id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Order updated successfully.",
		"order":   order,
	})
}

// Delete removes an order and its lines.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	if err := h.orders.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Order with id #" + id.String() + " has been deleted",
	})
}

// parseStatuses collects repeated status query params, supporting both
// status=a&status=b and status[]=a&status[]=b forms.
func parseStatuses(c *fiber.Ctx) []string {
	var statuses []string
	for _, key := range []string{"status", "status[]"} {
		for _, value := range c.Context().QueryArgs().PeekMulti(key) {
			if s := string(value); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return statuses
}
