package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core/notification"
)

type (
	notificationApi struct {
		gateway  *notification.Gateway
		validate *validator.Validate
	}

	// SendNotificationRequest is the payload for showing a notification.
	SendNotificationRequest struct {
		Title   string               `json:"title" validate:"required"`
		Options notification.Options `json:"options"`
	}

	// NotificationStatusResponse reports the delivery capabilities of the app.
	NotificationStatusResponse struct {
		Supported  bool                    `json:"supported"`
		Permission notification.Permission `json:"permission"`
	}
)

func registerNotificationAPI(g *echo.Group, gateway *notification.Gateway, validate *validator.Validate) {
	api := notificationApi{gateway: gateway, validate: validate}

	ng := g.Group("/notifications")
	ng.GET("/status", api.status)
	ng.POST("/permission", api.requestPermission)
	ng.POST("", api.send)
}

// Handlers

func (api *notificationApi) status(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, NotificationStatusResponse{
		Supported:  api.gateway.Supported(),
		Permission: api.gateway.Permission(),
	})
}

func (api *notificationApi) requestPermission(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"permission": api.gateway.RequestPermission()})
}

func (api *notificationApi) send(ctx echo.Context) error {
	var data SendNotificationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SendNotificationRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	delivery := api.gateway.Send(data.Title, data.Options)
	return ctx.JSON(http.StatusOK, echo.Map{"delivery": delivery})
}
