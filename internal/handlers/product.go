package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/middleware"
	"github.com/example/pepine/internal/services"
	"github.com/example/pepine/internal/utils"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	products *services.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type categoryRef struct {
	ID uint `json:"id" validate:"required"`
}

type createProductRequest struct {
	Name             string        `json:"name" validate:"required"`
	ScientificName   string        `json:"scientific_name" validate:"required"`
	MaturityHeight   string        `json:"maturity_height"`
	MaturityWidth    string        `json:"maturity_width"`
	Family           string        `json:"family"`
	Origin           string        `json:"origin"`
	FlowerColor      string        `json:"flower_color"`
	LeafColor        string        `json:"leaf_color"`
	Description1     string        `json:"description1"`
	Description2     string        `json:"description2"`
	Size             string        `json:"size"`
	Pot              string        `json:"pot"`
	Stock            float64       `json:"stock" validate:"gte=0"`
	Price            float64       `json:"price" validate:"gte=0"`
	VAT              float64       `json:"vat" validate:"gte=0,lte=100"`
	Status           bool          `json:"status"`
	Yield            string        `json:"yield"`
	HardinessZone    string        `json:"hardiness_zone"`
	WaterRequirement string        `json:"water_requirement"`
	Exposure         string        `json:"exposure"`
	GroundCoverPower string        `json:"ground_cover_power"`
	Strate           string        `json:"strate"`
	Foliage          string        `json:"foliage"`
	Media            []string      `json:"media"`
	Categories       []categoryRef `json:"categories" validate:"omitempty,dive"`
}

// Create registers a new product owned by the authenticated admin.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	product, err := h.products.Create(user, services.ProductInput{
		Name:             req.Name,
		ScientificName:   req.ScientificName,
		MaturityHeight:   req.MaturityHeight,
		MaturityWidth:    req.MaturityWidth,
		Family:           req.Family,
		Origin:           req.Origin,
		FlowerColor:      req.FlowerColor,
		LeafColor:        req.LeafColor,
		Description1:     req.Description1,
		Description2:     req.Description2,
		Size:             req.Size,
		Pot:              req.Pot,
		Stock:            req.Stock,
		Price:            req.Price,
		VAT:              req.VAT,
		Status:           req.Status,
		Yield:            req.Yield,
		HardinessZone:    req.HardinessZone,
		WaterRequirement: req.WaterRequirement,
		Exposure:         req.Exposure,
		GroundCoverPower: req.GroundCoverPower,
		Strate:           req.Strate,
		Foliage:          req.Foliage,
		Media:            req.Media,
		Categories:       categoryIDs(req.Categories),
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "The product has been successfully registered.",
		"product": product,
	})
}

// List returns the paginated catalog with aggregate counts.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 20)

	page, err := h.products.List(pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":        fiber.StatusOK,
		"message":       "Products retrieved successfully.",
		"products":      page.Products,
		"totalProducts": page.TotalProducts,
		"totalPages":    page.TotalPages,
	})
}

// Get resolves a product by id, name or slug.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.FindByTerm(c.Params("term"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Product retrieved successfully.",
		"product": product,
	})
}

type updateProductRequest struct {
	Name             *string       `json:"name"`
	ScientificName   *string       `json:"scientific_name"`
	MaturityHeight   *string       `json:"maturity_height"`
	MaturityWidth    *string       `json:"maturity_width"`
	Family           *string       `json:"family"`
	Origin           *string       `json:"origin"`
	FlowerColor      *string       `json:"flower_color"`
	LeafColor        *string       `json:"leaf_color"`
	Description1     *string       `json:"description1"`
	Description2     *string       `json:"description2"`
	Size             *string       `json:"size"`
	Pot              *string       `json:"pot"`
	Stock            *float64      `json:"stock" validate:"omitempty,gte=0"`
	Price            *float64      `json:"price" validate:"omitempty,gte=0"`
	VAT              *float64      `json:"vat" validate:"omitempty,gte=0,lte=100"`
	Status           *bool         `json:"status"`
	Yield            *string       `json:"yield"`
	HardinessZone    *string       `json:"hardiness_zone"`
	WaterRequirement *string       `json:"water_requirement"`
	Exposure         *string       `json:"exposure"`
	GroundCoverPower *string       `json:"ground_cover_power"`
	Strate           *string       `json:"strate"`
	Foliage          *string       `json:"foliage"`
	Media            []string      `json:"media"`
	Categories       []categoryRef `json:"categories" validate:"omitempty,dive"`
}

// Update applies a partial product update atomically; supplied media and
// category lists fully replace the existing sets.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	input := services.ProductUpdateInput{
		Name:             req.Name,
		ScientificName:   req.ScientificName,
		MaturityHeight:   req.MaturityHeight,
		MaturityWidth:    req.MaturityWidth,
		Family:           req.Family,
		Origin:           req.Origin,
		FlowerColor:      req.FlowerColor,
		LeafColor:        req.LeafColor,
		Description1:     req.Description1,
		Description2:     req.Description2,
		Size:             req.Size,
		Pot:              req.Pot,
		Stock:            req.Stock,
		Price:            req.Price,
		VAT:              req.VAT,
		Status:           req.Status,
		Yield:            req.Yield,
		HardinessZone:    req.HardinessZone,
		WaterRequirement: req.WaterRequirement,
		Exposure:         req.Exposure,
		GroundCoverPower: req.GroundCoverPower,
		Strate:           req.Strate,
		Foliage:          req.Foliage,
		Media:            req.Media,
	}
	if req.Categories != nil {
		input.Categories = categoryIDs(req.Categories)
	}

	product, err := h.products.Update(id, input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Product updated successfully",
		"product": product,
	})
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	if err := h.products.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Product with id #" + id.String() + " has been deleted",
	})
}

// categoryIDs keeps the nil/empty distinction: a supplied empty list means
// "clear every association", absence means "leave untouched".
func categoryIDs(refs []categoryRef) []uint {
	if refs == nil {
		return nil
	}
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
