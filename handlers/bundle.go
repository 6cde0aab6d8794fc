package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the route registrar wires up.
type HandlerBundle struct {
	SaveSlotsHandler    gin.HandlerFunc
	SuggestHandler      gin.HandlerFunc
	BookHandler         gin.HandlerFunc
	CalendarHandler     gin.HandlerFunc
	ListBookingsHandler gin.HandlerFunc
}
