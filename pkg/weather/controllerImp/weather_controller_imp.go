package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"etflow/entities"
	"etflow/pkg/eto"
	"etflow/pkg/weather/service"
)

type WeatherCtrl struct{ svc service.WeatherService }

func New(svc service.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" { from = "0000-01-01" }
	if to == "" { to = time.Now().Format("2006-01-02") }
	out, err := h.svc.Range(uid, from, to)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

type manualReq struct {
	Date      string   `json:"date"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation float64  `json:"elevation"`
	TempMax   float64  `json:"temp_max"`
	TempMin   float64  `json:"temp_min"`
	Humidity  float64  `json:"humidity"`
	WindSpeed float64  `json:"wind_speed"`
	Radiation float64  `json:"radiation"`
	Pressure  *float64 `json:"pressure"`
	ETo       *float64 `json:"eto"`
	Method    string   `json:"method"`
}

// Record stores a hand-entered day. The record is pinned against automated
// refresh; ETo is derived from the fields when the caller omits it.
func (h *WeatherCtrl) Record(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req manualReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	if req.TempMax < req.TempMin {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "temp_max must be >= temp_min"})
	}
	o := &entities.WeatherObservation{
		UserID:    uid,
		Date:      req.Date,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Elevation: req.Elevation,
		TempMax:   req.TempMax,
		TempMin:   req.TempMin,
		Humidity:  req.Humidity,
		WindSpeed: req.WindSpeed,
		Radiation: req.Radiation,
		Pressure:  req.Pressure,
		Method:    req.Method,
	}
	if err := h.svc.SaveManual(o, req.ETo); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}

type methodInfo struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Requires []string `json:"requires"`
}

// Methods lists the ETo formulas a client can pick from, with the input
// fields each one needs.
func (h *WeatherCtrl) Methods(c echo.Context) error {
	out := make([]methodInfo, 0, len(eto.Methods()))
	for _, m := range eto.Methods() {
		out = append(out, methodInfo{Key: m.String(), Label: m.Label(), Requires: eto.Requirements(m)})
	}
	return c.JSON(http.StatusOK, out)
}
