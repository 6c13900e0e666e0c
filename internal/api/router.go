package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"job-board-service/internal/middleware"
)

// NewRouter wires every route with its gates. Companies and jobs are
// readable by any authenticated user and writable by admins; users
// register and log in without a token and may only change their own
// record.
func NewRouter(secret string, sessions middleware.SessionReader, companyH *CompanyHandler, jobH *JobHandler, userH *UserHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	auth := middleware.Authenticated(secret, sessions)
	admin := middleware.RequireAdmin()

	e.POST("/login", userH.Login)

	e.GET("/companies", companyH.Search, auth)
	e.GET("/companies/:handle", companyH.Get, auth)
	e.POST("/companies", companyH.Create, auth, admin)
	e.PATCH("/companies/:handle", companyH.Update, auth, admin)
	e.DELETE("/companies/:handle", companyH.Delete, auth, admin)

	e.GET("/jobs", jobH.Search, auth)
	e.GET("/jobs/:id", jobH.Get, auth)
	e.POST("/jobs", jobH.Create, auth, admin)
	e.PATCH("/jobs/:id", jobH.Update, auth, admin)
	e.DELETE("/jobs/:id", jobH.Delete, auth, admin)

	e.POST("/users", userH.Create)
	e.GET("/users", userH.List)
	e.GET("/users/:username", userH.Get)
	e.PATCH("/users/:username", userH.Update, auth, middleware.RequireSelf("username"))
	e.DELETE("/users/:username", userH.Delete, auth, middleware.RequireSelf("username"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "job-board-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e
}
