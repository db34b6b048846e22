package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /jobs.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        min_salary  query     number  false  "Minimum salary"
// @Param        max_equity  query     number  false  "Maximum equity"
// @Param        search      query     string  false  "Case-insensitive title substring"
// @Success      200         {object}  jobListResponse
// @Failure      400         {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	minSalary, err := floatQuery(c, "min_salary")
	if err != nil {
		return err
	}
	maxEquity, err := floatQuery(c, "max_equity")
	if err != nil {
		return err
	}

	jobs, err := h.service.FindAll(c.Request().Context(), domain.JobFilter{
		MinSalary: minSalary,
		MaxEquity: maxEquity,
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Jobs: jobs})
}

// Create handles POST /jobs.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), domain.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, jobResponse{Job: job})
}

// Get handles GET /jobs/:id; the response embeds the parent company's
// public fields, or null if the company no longer exists.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  jobDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	job, err := h.service.FindOne(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobDetailResponse{Job: job})
}

// Update handles PATCH /jobs/:id. The id is system-generated and its
// presence in the body is a 400.
//
// @Summary      Partially update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	raw, err := decodePartial(c, &req)
	if err != nil {
		return err
	}
	if _, ok := raw["id"]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "you are not allowed to change the id")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := domain.UpdateFields{}
	if _, ok := raw["title"]; ok {
		fields["title"] = req.Title
	}
	if _, ok := raw["salary"]; ok {
		fields["salary"] = req.Salary
	}
	if _, ok := raw["equity"]; ok {
		fields["equity"] = req.Equity
	}
	if _, ok := raw["company_handle"]; ok {
		fields["company_handle"] = req.CompanyHandle
	}

	job, err := h.service.Update(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobResponse{Job: job})
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted"})
}

func jobID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}
