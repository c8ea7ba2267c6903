package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"etflow/entities"
	"etflow/pkg/soil"
	"etflow/pkg/soilprofile/repository"
)

type SoilCtrl struct{ repo repository.SoilRepository }

func New(repo repository.SoilRepository) *SoilCtrl { return &SoilCtrl{repo} }

type soilReq struct {
	Name             string   `json:"name"`
	FieldCapacityPct float64  `json:"field_capacity_pct"`
	WiltingPointPct  float64  `json:"wilting_point_pct"`
	BulkDensity      float64  `json:"bulk_density"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

func (r soilReq) validate() string {
	// zero values are allowed: the tank model substitutes defaults
	if r.FieldCapacityPct != 0 || r.WiltingPointPct != 0 {
		if r.WiltingPointPct <= 0 {
			return "wilting_point_pct must be > 0"
		}
		if r.FieldCapacityPct <= r.WiltingPointPct {
			return "field_capacity_pct must exceed wilting_point_pct"
		}
	}
	if r.BulkDensity < 0 {
		return "bulk_density must be >= 0"
	}
	return ""
}

func (h *SoilCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req soilReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	p := &entities.SoilProfile{
		UserID:           uid,
		Name:             req.Name,
		FieldCapacityPct: req.FieldCapacityPct,
		WiltingPointPct:  req.WiltingPointPct,
		BulkDensity:      req.BulkDensity,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
	if err := h.repo.Create(p); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, p)
}

func (h *SoilCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *SoilCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	// include the derived tank limits so the UI can show them alongside
	return c.JSON(http.StatusOK, map[string]any{"profile": p, "limits": soil.LimitsFromProfile(p)})
}

func (h *SoilCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	var req soilReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	p.Name = req.Name
	p.FieldCapacityPct = req.FieldCapacityPct
	p.WiltingPointPct = req.WiltingPointPct
	p.BulkDensity = req.BulkDensity
	p.Latitude = req.Latitude
	p.Longitude = req.Longitude
	if err := h.repo.Update(p); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, p)
}

func (h *SoilCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.NoContent(http.StatusNoContent)
}
