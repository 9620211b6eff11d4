// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file implements the authenticated item endpoints: every
// mutation extracts the resolved identity from the request context and runs
// the ownership check before the record store is touched.
package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lost-and-found/internal/auth"
	"github.com/iliyamo/lost-and-found/internal/middleware"
	"github.com/iliyamo/lost-and-found/internal/model"
	"github.com/iliyamo/lost-and-found/internal/queue"
	"github.com/iliyamo/lost-and-found/internal/repository"
	queue_publisher "github.com/iliyamo/lost-and-found/internal/service"
)

// ItemHandler bundles the repositories the item endpoints need.
type ItemHandler struct {
	Items *repository.ItemRepo
}

func NewItemHandler(items *repository.ItemRepo) *ItemHandler {
	if items == nil {
		panic("nil repository passed to NewItemHandler")
	}
	return &ItemHandler{Items: items}
}

type itemReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"` // LOST | FOUND | RETURNED
}

func validStatus(s string) bool {
	switch s {
	case model.ItemStatusLost, model.ItemStatusFound, model.ItemStatusReturned:
		return true
	}
	return false
}

// CreateItem handles POST /v1/items. The owner of the new listing is always
// the authenticated caller; the client cannot choose it.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status == "" {
		status = model.ItemStatusLost
	}
	if !validStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be LOST, FOUND or RETURNED"})
	}

	it := &model.Item{
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Location:    strings.TrimSpace(req.Location),
		Status:      status,
		OwnerID:     identity.ID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Items.Create(ctx, it); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create item"})
	}

	// Best effort: a lost event never fails the request.
	_ = queue_publisher.PublishItemEvent(ctx, itemEvent(queue.ActionItemReported, it))

	return c.JSON(http.StatusCreated, it)
}

// UpdateItem handles PUT /v1/items/:id. The flow is fetch, ownership check,
// then write: 404 when the listing is absent, 403 when it belongs to someone
// else. Empty request fields keep their stored values; owner_id is never
// updatable.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := auth.Authorize(identity, it.OwnerID); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	prevStatus := it.Status
	if v := strings.TrimSpace(req.Title); v != "" {
		it.Title = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		it.Description = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		it.Category = v
	}
	if v := strings.TrimSpace(req.Location); v != "" {
		it.Location = v
	}
	if v := strings.ToUpper(strings.TrimSpace(req.Status)); v != "" {
		if !validStatus(v) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be LOST, FOUND or RETURNED"})
		}
		it.Status = v
	}

	if err := h.Items.Update(ctx, &it); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if it.Status != prevStatus {
		_ = queue_publisher.PublishItemEvent(ctx, itemEvent(queue.ActionItemStatusChanged, &it))
	}

	return c.JSON(http.StatusOK, it)
}

// DeleteItem handles DELETE /v1/items/:id. Only the owner id is read before
// the ownership check; a successful deletion returns 204 No Content.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ownerID, err := h.Items.GetOwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := auth.Authorize(identity, ownerID); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := h.Items.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMyItems handles GET /v1/me/items and returns the caller's listings.
func (h *ItemHandler) ListMyItems(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Items.ListByOwner(c.Request().Context(), identity.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func itemEvent(action string, it *model.Item) queue.ItemEvent {
	return queue.ItemEvent{
		Action:     action,
		ItemID:     it.ID,
		OwnerID:    it.OwnerID,
		Title:      it.Title,
		Category:   it.Category,
		Location:   it.Location,
		Status:     it.Status,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
