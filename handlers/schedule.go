package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetsched/config"
	"meetsched/models"
	"meetsched/services/schedule"
	"meetsched/store"
	"meetsched/utils"
)

// ScheduleHandler exposes the scheduling service over HTTP.
type ScheduleHandler struct {
	Service schedule.SchedulerService
	Logger  *zap.Logger
}

// NewScheduleHandler builds a handler around the given service.
func NewScheduleHandler(svc schedule.SchedulerService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// SaveSlotsHandler stores per-user busy schedules, replacing prior values.
func (h *ScheduleHandler) SaveSlotsHandler(c *gin.Context) {
	var payload models.SaveSlotsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.SetBusySlots(payload.Users); err != nil {
		var formatErr *schedule.FormatError
		if errors.As(err, &formatErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid time format", formatErr.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to save slots", err.Error())
		return
	}
	h.Logger.Info("busy slots saved", zap.Int("users", len(payload.Users)))
	c.JSON(http.StatusOK, gin.H{"message": "Slots saved successfully"})
}

// SuggestHandler returns up to three common free slots of the requested
// duration (default from config).
func (h *ScheduleHandler) SuggestHandler(c *gin.Context) {
	raw := c.DefaultQuery("duration", strconv.Itoa(config.AppConfig.DefaultDurationMin))
	duration, err := strconv.Atoi(raw)
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive integer")
		return
	}
	slots, err := h.Service.Suggest(duration)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
		return
	}
	c.JSON(http.StatusOK, slots)
}

// BookHandler books a slot for a set of users if none of them conflict.
func (h *ScheduleHandler) BookHandler(c *gin.Context) {
	var payload models.BookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booking, err := h.Service.Book(payload.Users, payload.Slot)
	if err != nil {
		var formatErr *schedule.FormatError
		if errors.As(err, &formatErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid time format", formatErr.Error())
			return
		}
		var conflictErr *store.ConflictError
		if errors.As(err, &conflictErr) {
			h.Logger.Warn("booking conflict",
				zap.Int("user", conflictErr.UserID),
				zap.String("interval", fmt.Sprintf("%v", schedule.FormatInterval(conflictErr.Busy))))
			c.JSON(http.StatusConflict, gin.H{
				"error":    conflictErr.Error(),
				"user":     conflictErr.UserID,
				"interval": schedule.FormatInterval(conflictErr.Busy),
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to book slot", err.Error())
		return
	}
	h.Logger.Info("slot booked",
		zap.String("bookingID", booking.ID),
		zap.Ints("users", booking.Users))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Slot [%s, %s] booked for users %v", payload.Slot[0], payload.Slot[1], payload.Users),
		"booking": schedule.ViewOf(booking),
	})
}

// CalendarHandler returns one user's busy and booked intervals.
func (h *ScheduleHandler) CalendarHandler(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", "user id must be an integer")
		return
	}
	c.JSON(http.StatusOK, models.CalendarResponse{
		UserID: userID,
		Busy:   h.Service.Calendar(userID),
	})
}

// ListBookingsHandler returns every committed booking in commit order.
func (h *ScheduleHandler) ListBookingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Bookings())
}
