package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acquisitions/internal/api"
	"acquisitions/internal/database"
	"acquisitions/internal/model"
	"acquisitions/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreUserStubs() func() {
	origList := listUsers
	origGet := getUserByID
	return func() {
		listUsers = origList
		getUserByID = origGet
	}
}

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListUsersHandler(t *testing.T) {
	db := &database.FakeDB{}
	now := time.Now()

	t.Run("成功列出使用者", func(t *testing.T) {
		defer restoreUserStubs()()
		listUsers = func(ctx context.Context, db database.DB) ([]model.User, error) {
			return []model.User{
				{ID: 1, Name: "Ann", Email: "ann@example.com", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now},
				{ID: 2, Name: "Bob", Email: "bob@example.com", Role: model.RoleAdmin, CreatedAt: now, UpdatedAt: now},
			}, nil
		}

		c, rec := newContext("/api/users")
		require.NoError(t, ListUsersHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.UsersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Users fetched successfully", resp.Message)
		require.Equal(t, 2, resp.Count)
		require.Len(t, resp.Users, 2)
		require.Equal(t, "ann@example.com", resp.Users[0].Email)
		require.Equal(t, model.RoleAdmin, resp.Users[1].Role)
	})

	t.Run("查無資料回傳空陣列", func(t *testing.T) {
		defer restoreUserStubs()()
		listUsers = func(ctx context.Context, db database.DB) ([]model.User, error) {
			return []model.User{}, nil
		}

		c, rec := newContext("/api/users")
		require.NoError(t, ListUsersHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		// JSON 應為 [] 而非 null
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		require.JSONEq(t, `[]`, string(raw["users"]))

		var resp api.UsersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 0, resp.Count)
	})

	t.Run("查詢失敗回傳 500", func(t *testing.T) {
		defer restoreUserStubs()()
		listUsers = func(ctx context.Context, db database.DB) ([]model.User, error) {
			return nil, errors.New("query failed")
		}

		c, rec := newContext("/api/users")
		require.NoError(t, ListUsersHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "internal server error", resp.Error)
	})
}

func TestGetUserHandler(t *testing.T) {
	db := &database.FakeDB{}
	now := time.Now()

	t.Run("成功取得使用者", func(t *testing.T) {
		defer restoreUserStubs()()
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			require.Equal(t, 7, id)
			return &model.User{ID: 7, Name: "Ann", Email: "ann@example.com", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now}, nil
		}

		c, rec := newContext("/api/users/7")
		c.SetParamNames("user_id")
		c.SetParamValues("7")
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 7, resp.ID)
		require.Equal(t, "ann@example.com", resp.Email)
	})

	t.Run("ID 非數字回傳 400", func(t *testing.T) {
		c, rec := newContext("/api/users/abc")
		c.SetParamNames("user_id")
		c.SetParamValues("abc")
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "invalid user ID", resp.Error)
	})

	t.Run("使用者不存在回傳 404", func(t *testing.T) {
		defer restoreUserStubs()()
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			return nil, store.ErrUserNotFound
		}

		c, rec := newContext("/api/users/99")
		c.SetParamNames("user_id")
		c.SetParamValues("99")
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "user not found", resp.Error)
	})

	t.Run("查詢失敗回傳 500", func(t *testing.T) {
		defer restoreUserStubs()()
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			return nil, errors.New("query failed")
		}

		c, rec := newContext("/api/users/7")
		c.SetParamNames("user_id")
		c.SetParamValues("7")
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
