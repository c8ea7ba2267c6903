package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"etflow/pkg/irrigation/service"
)

type IrrigationCtrl struct{ svc service.IrrigationService }

func New(svc service.IrrigationService) *IrrigationCtrl { return &IrrigationCtrl{svc} }

func (h *IrrigationCtrl) Recommend(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	payload, err := h.svc.Recommend(c.Request().Context(), uint(id), uid, time.Now())
	if err != nil { return h.fail(c, err) }
	return c.JSON(http.StatusOK, payload)
}

func (h *IrrigationCtrl) Balance(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	days, _ := strconv.Atoi(c.QueryParam("days"))
	series, err := h.svc.HistoricalBalance(c.Request().Context(), uint(id), uid, days, time.Now())
	if err != nil { return h.fail(c, err) }
	return c.JSON(http.StatusOK, map[string]any{"days": series})
}

// fail maps the simulator's failure modes onto status codes the client can
// act on: 422 tells the user which day to backfill, 409 means a prerequisite
// is unconfigured.
func (h *IrrigationCtrl) fail(c echo.Context, err error) error {
	var missing *service.MissingObservationError
	switch {
	case errors.As(err, &missing):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error":  missing.Error(),
			"date":   missing.Date,
			"domain": missing.Domain,
		})
	case errors.Is(err, service.ErrMissingSoil), errors.Is(err, service.ErrMissingStation):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
