package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
	"job-board-service/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type createJobRequest struct {
	Title         string  `json:"title" validate:"required"`
	Salary        float64 `json:"salary" validate:"gte=0"`
	Equity        float64 `json:"equity" validate:"gte=0,lte=1"`
	CompanyHandle string  `json:"company_handle" validate:"required"`
}

type updateJobRequest struct {
	Title  *string  `json:"title"`
	Salary *float64 `json:"salary" validate:"omitempty,gte=0"`
	Equity *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
}

func (r updateJobRequest) fields() []repository.UpdateField {
	var fields []repository.UpdateField
	if r.Title != nil {
		fields = append(fields, repository.UpdateField{Column: "title", Value: *r.Title})
	}
	if r.Salary != nil {
		fields = append(fields, repository.UpdateField{Column: "salary", Value: *r.Salary})
	}
	if r.Equity != nil {
		fields = append(fields, repository.UpdateField{Column: "equity", Value: *r.Equity})
	}
	return fields
}

func jobID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, httperr.BadRequest("id must be an integer")
	}
	return id, nil
}

// Search handles GET /jobs?search=&min_salary=&min_equity=
func (h *JobHandler) Search(c echo.Context) error {
	f := repository.JobFilter{Search: c.QueryParam("search")}

	if raw := c.QueryParam("min_salary"); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return httperr.BadRequest("min_salary and min_equity must be numbers")
		}
		f.MinSalary = &n
	}
	if raw := c.QueryParam("min_equity"); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return httperr.BadRequest("min_salary and min_equity must be numbers")
		}
		f.MinEquity = &n
	}

	jobs, err := h.jobService.Search(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"jobs": jobs})
}

// Get handles GET /jobs/:id
func (h *JobHandler) Get(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if job == nil {
		return httperr.NotFound(fmt.Sprintf("No job with id: %d", id))
	}

	return c.JSON(http.StatusOK, echo.Map{"job": job})
}

// Create handles POST /jobs
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.Add(c.Request().Context(), &entity.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"job": job})
}

// Update handles PATCH /jobs/:id
func (h *JobHandler) Update(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.Update(c.Request().Context(), id, req.fields())
	if err != nil {
		return err
	}
	if job == nil {
		return httperr.NotFound(fmt.Sprintf("No job with id: %d", id))
	}

	return c.JSON(http.StatusOK, echo.Map{"job": job})
}

// Delete handles DELETE /jobs/:id
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	deleted, err := h.jobService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return httperr.NotFound(fmt.Sprintf("No such job: %d", id))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Job deleted"})
}
