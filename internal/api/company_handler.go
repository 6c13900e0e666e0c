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

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type createCompanyRequest struct {
	Handle       string `json:"handle" validate:"required"`
	Name         string `json:"name" validate:"required"`
	NumEmployees int    `json:"num_employees" validate:"gte=0"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
}

type updateCompanyRequest struct {
	Name         *string `json:"name"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,gte=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

// fields returns the supplied columns in the contract's fixed order.
func (r updateCompanyRequest) fields() []repository.UpdateField {
	var fields []repository.UpdateField
	if r.Name != nil {
		fields = append(fields, repository.UpdateField{Column: "name", Value: *r.Name})
	}
	if r.NumEmployees != nil {
		fields = append(fields, repository.UpdateField{Column: "num_employees", Value: *r.NumEmployees})
	}
	if r.Description != nil {
		fields = append(fields, repository.UpdateField{Column: "description", Value: *r.Description})
	}
	if r.LogoURL != nil {
		fields = append(fields, repository.UpdateField{Column: "logo_url", Value: *r.LogoURL})
	}
	return fields
}

// Search handles GET /companies?search=&min_employees=&max_employees=
func (h *CompanyHandler) Search(c echo.Context) error {
	f := repository.CompanyFilter{Search: c.QueryParam("search")}

	if raw := c.QueryParam("min_employees"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return httperr.BadRequest("min_employees and max_employees must be integers")
		}
		f.MinEmployees = &n
	}
	if raw := c.QueryParam("max_employees"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return httperr.BadRequest("min_employees and max_employees must be integers")
		}
		f.MaxEmployees = &n
	}
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return httperr.BadRequest("min_employees cannot be greater than max_employees")
	}

	companies, err := h.companyService.Search(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"companies": companies})
}

// Get handles GET /companies/:handle
func (h *CompanyHandler) Get(c echo.Context) error {
	handle := c.Param("handle")

	company, err := h.companyService.Get(c.Request().Context(), handle)
	if err != nil {
		return err
	}
	if company == nil {
		return httperr.NotFound(fmt.Sprintf("No company with handle: %s", handle))
	}

	return c.JSON(http.StatusOK, echo.Map{"company": company})
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	company, err := h.companyService.Add(c.Request().Context(), &entity.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"company": company})
}

// Update handles PATCH /companies/:handle
func (h *CompanyHandler) Update(c echo.Context) error {
	handle := c.Param("handle")

	var req updateCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	company, err := h.companyService.Update(c.Request().Context(), handle, req.fields())
	if err != nil {
		return err
	}
	if company == nil {
		return httperr.NotFound(fmt.Sprintf("No company with handle: %s", handle))
	}

	return c.JSON(http.StatusOK, echo.Map{"company": company})
}

// Delete handles DELETE /companies/:handle
func (h *CompanyHandler) Delete(c echo.Context) error {
	handle := c.Param("handle")

	deleted, err := h.companyService.Delete(c.Request().Context(), handle)
	if err != nil {
		return err
	}
	if deleted == "" {
		return httperr.NotFound(fmt.Sprintf("No such company: %s", handle))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Company deleted"})
}
