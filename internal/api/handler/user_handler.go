package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/api/metrics"
	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
	"github.com/joblyhq/jobs-api/internal/core/token"
)

// UserHandler handles HTTP requests for user operations. Registration
// issues a credential token directly, so new accounts are usable without a
// separate login.
type UserHandler struct {
	service ports.UserService
	codec   *token.Codec
}

func NewUserHandler(service ports.UserService, codec *token.Codec) *UserHandler {
	return &UserHandler{service: service, codec: codec}
}

// List handles GET /users. Only public fields are returned.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// Register handles POST /users and responds with a credential token for
// the new account.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		return err
	}

	signed, err := h.codec.Sign(user.Username, user.IsAdmin)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: signed})
}

// Get handles GET /users/:username.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.FindOne(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update handles PATCH /users/:username. A supplied password is re-hashed;
// the response never contains the hash or the admin flag.
//
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to change"
// @Success      200       {object}  userResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	raw, err := decodePartial(c, &req)
	if err != nil {
		return err
	}
	if _, ok := raw["username"]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "you are not allowed to change the username")
	}
	if _, ok := raw["is_admin"]; ok {
		return echo.NewHTTPError(http.StatusBadRequest, "you are not allowed to change the admin flag")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := domain.UpdateFields{}
	if _, ok := raw["password"]; ok {
		if req.Password == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "password cannot be null")
		}
		fields["password"] = *req.Password
	}
	if _, ok := raw["first_name"]; ok {
		fields["first_name"] = req.FirstName
	}
	if _, ok := raw["last_name"]; ok {
		fields["last_name"] = req.LastName
	}
	if _, ok := raw["email"]; ok {
		fields["email"] = req.Email
	}
	if _, ok := raw["photo_url"]; ok {
		fields["photo_url"] = req.PhotoURL
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("username"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Delete handles DELETE /users/:username.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}
