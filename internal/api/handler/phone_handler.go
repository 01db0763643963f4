package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usedphones/phoneshop-api/internal/core/ports"
)

// PhoneHandler exposes the catalog endpoints. All of them sit behind the
// session gate; the handlers themselves implement no auth logic.
type PhoneHandler struct {
	phoneService ports.PhoneService
}

func NewPhoneHandler(phoneService ports.PhoneService) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

type createPhoneRequest struct {
	Brand         string  `json:"brand" validate:"required"`
	Model         string  `json:"model" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Description   string  `json:"description"`
	Condition     string  `json:"condition"`
	StockQuantity int     `json:"stock_quantity" validate:"required,gt=0"`
}

// updatePhoneRequest is a partial update: absent fields keep their stored
// values.
type updatePhoneRequest struct {
	Brand         *string  `json:"brand"`
	Model         *string  `json:"model"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	Condition     *string  `json:"condition"`
	StockQuantity *int     `json:"stock_quantity"`
}

// ListPhones returns every catalog listing.
//
// @Summary      List phones
// @Tags         phones
// @Produce      json
// @Success      200  {array}   domain.Phone
// @Failure      401  {object}  map[string]string
// @Router       /api/phones [get]
func (h *PhoneHandler) ListPhones(c echo.Context) error {
	phones, err := h.phoneService.ListPhones(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, phones)
}

// CreatePhone adds a new listing.
//
// @Summary      Create a phone listing
// @Tags         phones
// @Accept       json
// @Produce      json
// @Param        body  body      createPhoneRequest  true  "Phone details"
// @Success      201   {object}  domain.Phone
// @Failure      400   {object}  map[string]string
// @Router       /api/phones [post]
func (h *PhoneHandler) CreatePhone(c echo.Context) error {
	var req createPhoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	phone, err := h.phoneService.CreatePhone(c.Request().Context(), ports.CreatePhoneInput{
		Brand:         req.Brand,
		Model:         req.Model,
		Price:         req.Price,
		Description:   req.Description,
		Condition:     req.Condition,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, phone)
}

// UpdatePhone applies a partial update and returns the merged document.
//
// @Summary      Partially update a phone listing
// @Tags         phones
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Phone id"
// @Param        body  body      updatePhoneRequest  true  "Fields to update"
// @Success      200   {object}  domain.Phone
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/phones/{id} [patch]
func (h *PhoneHandler) UpdatePhone(c echo.Context) error {
	var req updatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	phone, err := h.phoneService.UpdatePhone(c.Request().Context(), c.Param("id"), ports.UpdatePhoneInput{
		Brand:         req.Brand,
		Model:         req.Model,
		Price:         req.Price,
		Description:   req.Description,
		Condition:     req.Condition,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, phone)
}

// DeletePhone removes a listing.
//
// @Summary      Delete a phone listing
// @Tags         phones
// @Produce      json
// @Param        id  path  string  true  "Phone id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/phones/{id} [delete]
func (h *PhoneHandler) DeletePhone(c echo.Context) error {
	if err := h.phoneService.DeletePhone(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "phone deleted"})
}
