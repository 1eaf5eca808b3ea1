package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

// Staff side of waiter calls / bill requests and their notifications.
type RequestController struct {
	Requests *services.RequestService
}

func NewRequestController(s *services.RequestService) *RequestController {
	return &RequestController{Requests: s}
}

// GET /staff/restaurants/:restaurantId/requests
func (rc *RequestController) ListPending(c *gin.Context) {
	out, err := rc.Requests.ListPending(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// PATCH /staff/restaurants/:restaurantId/requests/:id/handle
func (rc *RequestController) MarkHandled(c *gin.Context) {
	sr, err := rc.Requests.MarkHandled(paramUint(c, "restaurantId"), paramUint(c, "id"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, sr)
}

// GET /staff/restaurants/:restaurantId/notifications
func (rc *RequestController) ListNotifications(c *gin.Context) {
	out, err := rc.Requests.ListUnreadNotifications(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// PATCH /staff/restaurants/:restaurantId/notifications/:id/read
func (rc *RequestController) MarkRead(c *gin.Context) {
	if err := rc.Requests.MarkNotificationRead(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"read": true})
}

// PATCH /staff/restaurants/:restaurantId/notifications/:id/archive
func (rc *RequestController) Archive(c *gin.Context) {
	if err := rc.Requests.ArchiveNotification(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"archived": true})
}
