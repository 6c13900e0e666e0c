package api

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"job-board-service/internal/httperr"
)

// ErrorHandler is the single place failures become responses. Every
// error funnels into a {status, message} body; nothing else leaks to
// the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *httperr.Error
	if errors.As(err, &apiErr) {
		_ = c.JSON(apiErr.Status, apiErr)
		return
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		_ = c.JSON(echoErr.Code, &httperr.Error{Status: echoErr.Code, Message: fmt.Sprintf("%v", echoErr.Message)})
		return
	}

	internal := httperr.Internal()
	_ = c.JSON(internal.Status, internal)
}
