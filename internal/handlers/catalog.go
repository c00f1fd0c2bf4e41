package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/pricing"
	"github.com/Premkumar95/UPPTN/internal/services"
)

// CatalogHandler serves the public service discovery surface.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Search filters listings by keyword, district, category and base-price
// range. Pagination is
// a pure window over the full filtered set: pass page and page_size to
// receive one window, omit page_size to receive everything.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	results, err := h.catalog.Search(models.ServiceFilter{
		Keyword:  c.Query("keyword"),
		District: c.Query("district"),
		Category: c.Query("category"),
		MinPrice: c.QueryFloat("min_price", 0),
		MaxPrice: c.QueryFloat("max_price", 0),
	})
	if err != nil {
		return err
	}

	total := len(results)
	pageSize := c.QueryInt("page_size", 0)
	page := c.QueryInt("page", 1)
	if pageSize > 0 {
		results, err = services.Paginate(results, page, pageSize)
		if err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"services":  results,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetService returns one listing; with a duration query it also returns the
// live price estimate from the pricing engine.
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	svc, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return err
	}

	response := fiber.Map{"service": svc}
	if duration := c.QueryInt("duration", 0); duration != 0 {
		quote, err := pricing.ForService(svc, duration)
		if err != nil {
			return err
		}
		response["quote"] = quote
	}
	return c.JSON(response)
}

// Districts returns the static district list.
func (h *CatalogHandler) Districts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"districts": models.Districts})
}

// Categories returns the static category list.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.Categories})
}
