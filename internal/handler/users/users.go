package users

import (
	"errors"
	"net/http"
	"strconv"

	"acquisitions/internal/api"
	"acquisitions/internal/database"
	"acquisitions/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
)

// @Summary     List all users
// @Description 回傳所有使用者（不含密碼哈希）與總數
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			log.Error().Err(err).Msg("list users failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}

		resp := api.UsersResponse{
			Message: "Users fetched successfully",
			Users:   make([]api.UserResponse, 0, len(users)),
			Count:   len(users),
		}
		for _, u := range users {
			resp.Users = append(resp.Users, api.UserResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt,
				UpdatedAt: u.UpdatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料（管理員專屬）
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			log.Error().Err(err).Int("user_id", id).Msg("get user failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}
}
