package handler

import (
	"net/http"

	"github.com/ForumApp/user-service/internal/dto"
	"github.com/ForumApp/user-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) usersMe(c *gin.Context) {
	user := h.getUser(c)

	c.JSON(http.StatusOK, dto.GetUserDtoFromFullUser(*user))
}

func (h *Handler) usersGetByUsername(c *gin.Context) {
	username := c.GetString("username")

	user, err := h.services.User.FindByUsername(c.Request.Context(), username)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GetUserDtoFromFullUser(*user))
}

type usersGetFollowersInput struct {
	Limit  int `form:"limit,default=30" binding:"min=1"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

func (h *Handler) usersGetFollowers(c *gin.Context) {
	username := c.GetString("username")

	var input usersGetFollowersInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidQueryParams.Error()))
		return
	}

	var viewerID *uuid.UUID
	if viewer := h.getUser(c); viewer != nil {
		viewerID = &viewer.ID
	}

	locale := h.bundle.Match(c.GetHeader("Accept-Language"))

	result, err := h.services.Follower.GetFollowerList(c.Request.Context(), service.GetFollowerListInput{
		Username: username,
		ViewerID: viewerID,
		Locale: locale,
		Limit: input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.FollowerListResponseFromResult(result))
}
