package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/eduhub/apps/api/echo"
	"github.com/trezcool/eduhub/core/notification"
)

func Test_notificationApi_status(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/notifications/status")
	env.app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var status NotificationStatusResponse
	unmarchallObj(t, rec, &status)
	assert.True(t, status.Supported)
	assert.Equal(t, notification.PermissionGranted, status.Permission)
}

func Test_notificationApi_requestPermission(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/notifications/permission")
	env.app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Permission notification.Permission `json:"permission"`
	}
	unmarchallObj(t, rec, &body)
	assert.Equal(t, notification.PermissionGranted, body.Permission)
}

func Test_notificationApi_send(t *testing.T) {
	env := setup(t)

	t.Run("ok", func(t *testing.T) {
		body := marchallObj(t, SendNotificationRequest{
			Title:   "Grade Updated",
			Options: notification.Options{Body: "Math midterm posted"},
		})
		req, rec := newRequest(http.MethodPost, "/v1/notifications", body)
		env.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res struct {
			Delivery notification.Delivery `json:"delivery"`
		}
		unmarchallObj(t, rec, &res)
		assert.Equal(t, notification.DeliveryDelivered, res.Delivery)
	})

	t.Run("missing title", func(t *testing.T) {
		body := marchallObj(t, SendNotificationRequest{})
		req, rec := newRequest(http.MethodPost, "/v1/notifications", body)
		env.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "title")
	})
}
