package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/pomodoro"
)

type (
	pomodoroApi struct {
		timer    *pomodoro.Timer
		validate *validator.Validate
	}

	// SetModeRequest switches the timer to a new session mode.
	SetModeRequest struct {
		Mode pomodoro.Mode `json:"mode" validate:"required,oneof=work shortBreak longBreak"`
	}
)

func registerPomodoroAPI(g *echo.Group, timer *pomodoro.Timer, validate *validator.Validate) {
	api := pomodoroApi{timer: timer, validate: validate}

	pg := g.Group("/pomodoro")
	pg.GET("", api.retrieve)
	pg.POST("/start", api.start)
	pg.POST("/pause", api.pause)
	pg.POST("/stop", api.stop)
	pg.PUT("/mode", api.setMode)
	pg.PUT("/settings", api.updateSettings)
}

// Handlers

func (api *pomodoroApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *pomodoroApi) start(ctx echo.Context) error {
	if err := api.timer.Start(); err != nil {
		return core.NewValidationError(err)
	}
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *pomodoroApi) pause(ctx echo.Context) error {
	if err := api.timer.Pause(); err != nil {
		return core.NewValidationError(err)
	}
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *pomodoroApi) stop(ctx echo.Context) error {
	api.timer.Stop()
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *pomodoroApi) setMode(ctx echo.Context) error {
	var data SetModeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetModeRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	api.timer.SetMode(data.Mode)
	return ctx.JSON(http.StatusOK, api.timer.State())
}

func (api *pomodoroApi) updateSettings(ctx echo.Context) error {
	var data pomodoro.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	api.timer.UpdateSettings(data)
	return ctx.JSON(http.StatusOK, api.timer.State())
}
