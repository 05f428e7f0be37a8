package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rolodex/internal/delivery/http/response"
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultSearchPage = 0
	defaultSearchSize = 10
)

// ContactHandler holds dependencies for contact handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles contact creation for the authenticated user.
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Contact created successfully")
}

// Get returns a single contact owned by the authenticated user.
func (h *ContactHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Get(c.Request().Context(), user, c.Param("contactId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Contact retrieved successfully")
}

// Update replaces all fields of a contact owned by the authenticated user.
func (h *ContactHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	// Binding into a value keeps an empty request body from leaving the
	// input nil; validation then rejects the missing fields.
	var input usecase.UpdateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	input.ID = c.Param("contactId")

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Contact updated successfully")
}

// Delete removes a contact owned by the authenticated user.
func (h *ContactHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), user, c.Param("contactId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact deleted successfully")
}

// Search lists the authenticated user's contacts matching the optional
// name/email/phone filters, paginated.
func (h *ContactHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := queryInt(c, "page", defaultSearchPage)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page parameter")
	}
	size, err := queryInt(c, "size", defaultSearchSize)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid size parameter")
	}

	input := &usecase.SearchContactsInput{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
		Page:  page,
		Size:  size,
	}

	output, err := h.uc.Search(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPaging(c, http.StatusOK, output.Contacts, output.Paging, "Contacts retrieved successfully")
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
