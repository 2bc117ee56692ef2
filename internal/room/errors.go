package room

import (
	"errors"
	"net/http"

	"xidach/internal/shared"
)

var (
	ErrRoomNotFound      = errors.New("NOT_FOUND")
	ErrRoomFull          = errors.New("FULL_ROOM")
	ErrDuplicateUsername = errors.New("DUPLICATE_USERNAME")
	ErrGameInProgress    = errors.New("GAME_IN_PROGRESS")
	ErrInvalidAction     = errors.New("INVALID_ACTION")
)

// ErrorCode maps an error to the status code and message sent on the wire.
func ErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return http.StatusNotFound, ErrRoomNotFound.Error()
	case errors.Is(err, ErrRoomFull):
		return http.StatusBadRequest, ErrRoomFull.Error()
	case errors.Is(err, ErrDuplicateUsername):
		return http.StatusBadRequest, ErrDuplicateUsername.Error()
	case errors.Is(err, ErrGameInProgress):
		return http.StatusBadRequest, ErrGameInProgress.Error()
	case errors.Is(err, ErrInvalidAction):
		return http.StatusBadRequest, ErrInvalidAction.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func failure(err error) shared.Response {
	code, msg := ErrorCode(err)
	return shared.Failure(code, msg)
}
