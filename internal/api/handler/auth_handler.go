package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/api/metrics"
	"github.com/joblyhq/jobs-api/internal/core/ports"
	"github.com/joblyhq/jobs-api/internal/core/token"
)

// AuthHandler exchanges credentials for a signed token.
type AuthHandler struct {
	service ports.UserService
	codec   *token.Codec
}

func NewAuthHandler(service ports.UserService, codec *token.Codec) *AuthHandler {
	return &AuthHandler{service: service, codec: codec}
}

// Login handles POST /login.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	signed, err := h.codec.Sign(user.Username, user.IsAdmin)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: signed})
}
