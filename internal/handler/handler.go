package handler

import (
	"context"
	"os"

	"github.com/ForumApp/user-service/internal/i18n"
	"github.com/ForumApp/user-service/internal/model"
	"github.com/ForumApp/user-service/internal/service"
	"github.com/ForumApp/user-service/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
	bundle   *i18n.Bundle
}

func New(services *service.Service, bundle *i18n.Bundle) *Handler {
	return &Handler{
		services: services,
		bundle: bundle,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"GET"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			me := users.Group("/@me")
			{
				me.Use(h.authMiddleware)

				me.GET("", h.usersMe)
			}

			byUsername := users.Group("/byUsername/:username")
			{
				byUsername.Use(h.usernameMiddleware)

				byUsername.GET("", h.usersGetByUsername)
				byUsername.GET("/followers", h.optionalAuthMiddleware, h.usersGetFollowers)
			}
		}
	}

	return r
}

func (h *Handler) getUserDataFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.FullUser, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUser(c *gin.Context) *model.FullUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.FullUser)
	if !ok {
		return nil
	}

	return &user
}
