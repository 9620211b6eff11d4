// This file defines handlers for the public browsing API. Anyone can browse
// lost-and-found listings without authentication; only mutation is gated.
// Responses expose the owner id (it already appears on every listing the
// original reporter shares) but no timestamps or account details.
package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lost-and-found/internal/model"
	"github.com/iliyamo/lost-and-found/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
type PublicHandler struct {
	Items *repository.ItemRepo
}

func NewPublicHandler(items *repository.ItemRepo) *PublicHandler {
	return &PublicHandler{Items: items}
}

// PublicItem represents a listing exposed via the public API.
type PublicItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	OwnerID     uint64 `json:"owner_id"`
}

func toPublicItem(it model.Item) PublicItem {
	return PublicItem{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Category:    it.Category,
		Location:    it.Location,
		Status:      it.Status,
		OwnerID:     it.OwnerID,
	}
}

// GetPublicItems handles GET /v1/items. Supported query parameters:
// category, status, location, q (free text over title/description), page and
// page_size. Response JSON contains an "items" array plus pagination info.
func (h *PublicHandler) GetPublicItems(c echo.Context) error {
	q := repository.ItemSearchQuery{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Status:   strings.TrimSpace(c.QueryParam("status")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		Text:     strings.TrimSpace(c.QueryParam("q")),
		Page:     1,
		PageSize: 20,
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		q.PageSize = v
	}

	items, total, err := h.Items.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicItem, 0, len(items))
	for _, it := range items {
		out = append(out, toPublicItem(it))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     out,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}

// GetPublicItem handles GET /v1/items/:id and returns a single listing.
func (h *PublicHandler) GetPublicItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	it, err := h.Items.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toPublicItem(it))
}
