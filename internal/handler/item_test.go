package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/lost-and-found/internal/model"
	"github.com/iliyamo/lost-and-found/internal/repository"
)

// newItemContext builds an echo context the way the auth middleware would
// leave it: resolved identity already stored under the context keys.
func newItemContext(method, path, body string, caller model.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", caller)
	c.Set("user_id", caller.ID)
	return c, rec
}

func newMockItemHandler(t *testing.T) (*ItemHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewItemHandler(repository.NewItemRepo(db)), mock
}

func TestDeleteItem_Owner(t *testing.T) {
	h, mock := newMockItemHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM items WHERE id=? LIMIT 1")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id=?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newItemContext(http.MethodDelete, "/v1/items/42", "", model.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.DeleteItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_NotOwner(t *testing.T) {
	h, mock := newMockItemHandler(t)

	// The listing belongs to user 9; user 7 is calling. The DELETE
	// statement must never run.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM items WHERE id=? LIMIT 1")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(9))

	c, rec := newItemContext(http.MethodDelete, "/v1/items/42", "", model.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.DeleteItem(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_Missing(t *testing.T) {
	h, mock := newMockItemHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM items WHERE id=? LIMIT 1")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

	c, rec := newItemContext(http.MethodDelete, "/v1/items/42", "", model.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.DeleteItem(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItem_NotOwner(t *testing.T) {
	h, mock := newMockItemHandler(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id,title,description,category,location,status,owner_id,created_at,updated_at FROM items WHERE id=? LIMIT 1")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "category", "location", "status", "owner_id", "created_at", "updated_at",
		}).AddRow(42, "Blue backpack", "", "bags", "library", model.ItemStatusLost, 9, now, now))

	c, rec := newItemContext(http.MethodPut, "/v1/items/42",
		`{"title":"Stolen goods"}`, model.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.UpdateItem(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_BadID(t *testing.T) {
	h, _ := newMockItemHandler(t)

	c, rec := newItemContext(http.MethodDelete, "/v1/items/abc", "", model.User{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.DeleteItem(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
