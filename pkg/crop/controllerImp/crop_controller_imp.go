package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"etflow/pkg/crop"
	"etflow/pkg/crop/repository"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

// Get returns the template together with its Kc stage breakdown so a client
// can draw the curve without reimplementing the interpolation.
func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.repo.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	stages := crop.StagesFromTemplate(t)
	return c.JSON(http.StatusOK, map[string]any{"template": t, "season_days": stages.SeasonDays()})
}
