package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assistant"
)

type (
	assistantApi struct {
		session  *assistant.Session
		validate *validator.Validate
	}

	// ChatRequest is the payload for talking to the AI assistant.
	ChatRequest struct {
		Message string      `json:"message" validate:"required"`
		Context interface{} `json:"context"`
	}
)

func registerAssistantAPI(g *echo.Group, session *assistant.Session, validate *validator.Validate) {
	api := assistantApi{session: session, validate: validate}

	ag := g.Group("/ai")
	ag.GET("/health", api.health)
	ag.POST("/chat", api.chat)
	ag.POST("/chat/retry", api.retry)
	ag.GET("/messages", api.queryMessages)
	ag.DELETE("/messages", api.clearMessages)
	ag.DELETE("/messages/:id", api.destroyMessage)
}

// Handlers

func (api *assistantApi) health(ctx echo.Context) error {
	if !api.session.Available() {
		return errAIUnavailable
	}
	return ctx.JSON(http.StatusOK, echo.Map{"available": true})
}

func (api *assistantApi) chat(ctx echo.Context) error {
	var data ChatRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChatRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	reply, err := api.session.SendMessage(ctx.Request().Context(), data.Message, data.Context)
	if err != nil {
		if errors.Cause(err) == assistant.ErrUnavailable {
			return errAIUnavailable
		}
		return errors.Wrap(err, "sending chat message")
	}
	return ctx.JSON(http.StatusOK, reply)
}

func (api *assistantApi) retry(ctx echo.Context) error {
	reply, err := api.session.RetryLast(ctx.Request().Context())
	if err != nil {
		switch errors.Cause(err) {
		case assistant.ErrUnavailable:
			return errAIUnavailable
		case assistant.ErrNothingSent:
			return core.NewValidationError(assistant.ErrNothingSent)
		}
		return errors.Wrap(err, "retrying chat message")
	}
	return ctx.JSON(http.StatusOK, reply)
}

func (api *assistantApi) queryMessages(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.session.Messages())
}

func (api *assistantApi) clearMessages(ctx echo.Context) error {
	api.session.Clear()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assistantApi) destroyMessage(ctx echo.Context) error {
	api.session.Delete(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}
