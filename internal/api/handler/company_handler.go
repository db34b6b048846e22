package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company operations.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        min_employees  query     int     false  "Minimum employee count"
// @Param        max_employees  query     int     false  "Maximum employee count"
// @Param        search         query     string  false  "Case-insensitive name substring"
// @Success      200            {object}  companyListResponse
// @Failure      400            {object}  errorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	minEmployees, err := intQuery(c, "min_employees")
	if err != nil {
		return err
	}
	maxEmployees, err := intQuery(c, "max_employees")
	if err != nil {
		return err
	}

	companies, err := h.service.FindAll(c.Request().Context(), domain.CompanyFilter{
		MinEmployees: minEmployees,
		MaxEmployees: maxEmployees,
		Search:       c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyListResponse{Companies: companies})
}

// Create handles POST /companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  newCompanyResponse
// @Failure      400   {object}  errorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Create(c.Request().Context(), domain.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newCompanyResponse{NewCompany: company})
}

// Get handles GET /companies/:handle.
//
// @Summary      Get a company by handle
// @Tags         companies
// @Produce      json
// @Param        handle  path      string  true  "Company handle"
// @Success      200     {object}  companyResponse
// @Failure      404     {object}  errorResponse
// @Router       /companies/{handle} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.FindOne(c.Request().Context(), c.Param("handle"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Company: company})
}

// Update handles PATCH /companies/:handle. The handle is immutable and its
// presence in the body is a 400.
//
// @Summary      Partially update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        handle  path      string                true  "Company handle"
// @Param        body    body      updateCompanyRequest  true  "Fields to change"
// @Success      200     {object}  companyResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /companies/{handle} [patch]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	raw, err := decodePartial(c, &req)
	if err != nil {
		return err
	}
	if _, ok := raw["handle"]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "you are not allowed to change the handle")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := domain.UpdateFields{}
	if _, ok := raw["name"]; ok {
		fields["name"] = req.Name
	}
	if _, ok := raw["num_employees"]; ok {
		fields["num_employees"] = req.NumEmployees
	}
	if _, ok := raw["description"]; ok {
		fields["description"] = req.Description
	}
	if _, ok := raw["logo_url"]; ok {
		fields["logo_url"] = req.LogoURL
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("handle"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Company: company})
}

// Delete handles DELETE /companies/:handle. Jobs referencing the handle
// are removed by the database cascade.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        handle  path      string  true  "Company handle"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  errorResponse
// @Router       /companies/{handle} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("handle")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Company deleted"})
}
