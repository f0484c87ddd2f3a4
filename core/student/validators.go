package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/eduhub/core"
)

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.Name = core.CleanString(up.Name)
	up.Phone = core.CleanString(up.Phone)
	up.Address = core.CleanString(up.Address)
	return validate.Struct(up)
}

func (na *NewAnnouncement) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	na.Category = core.CleanString(na.Category, true /* lower */)
	na.Priority = core.CleanString(na.Priority, true /* lower */)
	return validate.Struct(na)
}
