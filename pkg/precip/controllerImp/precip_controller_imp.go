package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"etflow/entities"
	"etflow/pkg/precip/repository"
	"etflow/pkg/precip/service"
)

type PrecipCtrl struct {
	stations repository.StationRepository
	svc      service.PrecipService
}

func New(stations repository.StationRepository, svc service.PrecipService) *PrecipCtrl {
	return &PrecipCtrl{stations: stations, svc: svc}
}

type stationReq struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *PrecipCtrl) CreateStation(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req stationReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	st := &entities.Station{UserID: uid, Name: req.Name, Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.stations.Create(st); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, st)
}

func (h *PrecipCtrl) ListStations(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.stations.ListByUser(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *PrecipCtrl) DeleteStation(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.stations.Delete(uint(id), uid); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.NoContent(http.StatusNoContent)
}

func (h *PrecipCtrl) ListObservations(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.stations.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	out, err := h.svc.Range(uint(id), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

type recordReq struct {
	Date    string  `json:"date"`
	GrossMM float64 `json:"gross_mm"`
}

// RecordObservation is the manual-entry path; effective precipitation is
// derived with the user's configured method on the way in.
func (h *PrecipCtrl) RecordObservation(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.stations.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req recordReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.GrossMM < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "gross_mm must be >= 0"})
	}
	o := &entities.PrecipitationObservation{StationID: uint(id), Date: req.Date, GrossMM: req.GrossMM}
	if err := h.svc.SaveManual(o, uid); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}
