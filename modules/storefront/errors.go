package storefront

import (
	"errors"
	"net/http"

	"github.com/nudostudio/nudo/handler"
)

var ErrInvalidConfig = errors.New("storefront: invalid config")

var (
	ErrUnknownForm        = handler.NewHTTPError(http.StatusNotFound, "unknown_form")
	ErrWorkshopNotFound   = handler.NewHTTPError(http.StatusNotFound, "workshop_not_found")
	ErrWorkshopFull       = handler.NewHTTPError(http.StatusConflict, "workshop_full")
	ErrWorkshopStarted    = handler.NewHTTPError(http.StatusConflict, "workshop_started")
	ErrBackendUnavailable = handler.NewHTTPError(http.StatusServiceUnavailable, "backend_unavailable")
	ErrBackendFailed      = handler.NewHTTPError(http.StatusBadGateway, "backend_failed")
)
