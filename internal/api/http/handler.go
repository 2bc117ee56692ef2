package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xidach/internal/room"
	"xidach/internal/shared"
)

// HealthHandler reports liveness, open sockets and open rooms.
// @Summary Health check
// @Description Liveness check with the number of open websocket connections and rooms
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthHandler(sock Socket, rooms RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Clients: sock.Clients(), Rooms: rooms.Rooms()})
	}
}

// RoomHandler returns the redacted view of one room, the same view every
// member of the room receives.
// @Summary Get room snapshot
// @Description Returns the room as every member sees it: concealed deck, hands hidden until revealed
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} shared.Response
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /rooms/{id} [get]
func RoomHandler(rooms RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			code, msg := room.ErrorCode(room.ErrInvalidAction)
			c.JSON(code, shared.Failure(code, msg))
			return
		}
		view, ok := rooms.Snapshot(id)
		if !ok {
			code, msg := room.ErrorCode(room.ErrRoomNotFound)
			c.JSON(code, shared.Failure(code, msg))
			return
		}
		c.JSON(http.StatusOK, shared.Success(gin.H{"room": view}))
	}
}
