package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	g.GET("/student", api.retrieve)
	g.PUT("/student", api.update)

	ag := g.Group("/assignments")
	ag.GET("", api.queryAssignments)
	ag.POST("/:id/submit", api.submitAssignment)

	g.GET("/schedule", api.querySchedule)

	gg := g.Group("/grades")
	gg.GET("", api.queryGrades)
	gg.GET("/summary", api.gradeSummary)

	ng := g.Group("/announcements")
	ng.GET("", api.queryAnnouncements)
	ng.POST("", api.createAnnouncement)
	ng.GET("/unread-count", api.unreadAnnouncementCount)
	ng.POST("/:id/read", api.markAnnouncementRead)
}

// Handlers

func (api *studentApi) retrieve(ctx echo.Context) error {
	stu, err := api.svc.Profile()
	if err != nil {
		return errors.Wrap(err, "getting profile")
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	stu, err := api.svc.UpdateProfile(data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *studentApi) queryAssignments(ctx echo.Context) error {
	assignments, err := api.svc.QueryAssignments(ctx.QueryParam("status"))
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *studentApi) submitAssignment(ctx echo.Context) error {
	a, err := api.svc.SubmitAssignment(ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case student.ErrAssignmentNotFound:
			return errHttpNotFound
		case student.ErrAlreadySubmitted:
			return core.NewValidationError(student.ErrAlreadySubmitted)
		}
		return errors.Wrap(err, "submitting assignment")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *studentApi) querySchedule(ctx echo.Context) error {
	schedule, err := api.svc.QuerySchedule(ctx.QueryParam("day"))
	if err != nil {
		return errors.Wrap(err, "querying schedule")
	}
	return ctx.JSON(http.StatusOK, schedule)
}

func (api *studentApi) queryGrades(ctx echo.Context) error {
	grades, err := api.svc.QueryGrades()
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *studentApi) gradeSummary(ctx echo.Context) error {
	summary, err := api.svc.GradeSummary()
	if err != nil {
		return errors.Wrap(err, "getting grade summary")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *studentApi) queryAnnouncements(ctx echo.Context) error {
	unreadOnly := ctx.QueryParam("unread") == "true"
	announcements, err := api.svc.QueryAnnouncements(unreadOnly)
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, announcements)
}

func (api *studentApi) createAnnouncement(ctx echo.Context) error {
	var data student.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.CreateAnnouncement(data)
	if err != nil {
		return errors.Wrap(err, "creating announcement")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *studentApi) unreadAnnouncementCount(ctx echo.Context) error {
	count, err := api.svc.UnreadAnnouncementCount()
	if err != nil {
		return errors.Wrap(err, "counting unread announcements")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"count": count})
}

func (api *studentApi) markAnnouncementRead(ctx echo.Context) error {
	a, err := api.svc.MarkAnnouncementRead(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == student.ErrAnnouncementNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "marking announcement read")
	}
	return ctx.JSON(http.StatusOK, a)
}
