package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"etflow/pkg/settings/service"
)

type SettingsCtrl struct{ svc service.Service }

func New(svc service.Service) *SettingsCtrl { return &SettingsCtrl{svc} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	cfg, err := h.svc.Get(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, cfg)
}

func (h *SettingsCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	var patch service.SettingsPatch
	if err := c.Bind(&patch); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	cfg, err := h.svc.Update(uid, patch)
	if err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, cfg)
}
