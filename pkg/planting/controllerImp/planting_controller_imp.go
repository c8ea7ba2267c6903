package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"etflow/entities"
	"etflow/pkg/planting/repository"
)

type PlantingCtrl struct{ repo repository.PlantingRepository }

func New(repo repository.PlantingRepository) *PlantingCtrl { return &PlantingCtrl{repo} }

type createReq struct {
	CropTemplateID uint    `json:"crop_template_id"`
	SoilProfileID  uint    `json:"soil_profile_id"`
	StationID      uint    `json:"station_id"`
	SowingDate     string  `json:"sowing_date"`
	AreaHa         float64 `json:"area_ha"`
}

func (h *PlantingCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	sd, err := time.Parse("2006-01-02", req.SowingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sowing_date must be YYYY-MM-DD"})
	}
	if req.AreaHa <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "area_ha must be > 0"})
	}
	p := &entities.Planting{
		UserID:         uid,
		CropTemplateID: req.CropTemplateID,
		SoilProfileID:  req.SoilProfileID,
		StationID:      req.StationID,
		SowingDate:     sd,
		AreaHa:         req.AreaHa,
		Active:         true,
	}
	if err := h.repo.Create(p); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantingCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *PlantingCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	return c.JSON(http.StatusOK, p)
}

type executionReq struct {
	Date            string  `json:"date"`
	AppliedMM       float64 `json:"applied_mm"`
	SystemSuggested bool    `json:"system_suggested"`
}

func (h *PlantingCtrl) LogIrrigation(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req executionReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	if req.AppliedMM <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "applied_mm must be > 0"})
	}
	e := &entities.IrrigationExecution{
		PlantingID:      uint(id),
		Date:            req.Date,
		AppliedMM:       req.AppliedMM,
		SystemSuggested: req.SystemSuggested,
	}
	if err := h.repo.AddExecution(e); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, e)
}

func (h *PlantingCtrl) ListIrrigations(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = "0000-01-01"
	}
	out, err := h.repo.ExecutionsInRange(uint(id), from, to)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}
