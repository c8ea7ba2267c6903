package router

import (
	"github.com/labstack/echo/v4"
	"etflow/pkg/middleware"
)

func New(
	e *echo.Echo,
	requireAuth bool,
	soilCtrl interface{ Create(echo.Context) error; List(echo.Context) error; Get(echo.Context) error; Update(echo.Context) error; Delete(echo.Context) error },
	precipCtrl interface{ CreateStation(echo.Context) error; ListStations(echo.Context) error; DeleteStation(echo.Context) error; ListObservations(echo.Context) error; RecordObservation(echo.Context) error },
	plantingCtrl interface{ Create(echo.Context) error; List(echo.Context) error; Get(echo.Context) error; LogIrrigation(echo.Context) error; ListIrrigations(echo.Context) error },
	irrigationCtrl interface{ Recommend(echo.Context) error; Balance(echo.Context) error },
	weatherCtrl interface{ List(echo.Context) error; Record(echo.Context) error; Methods(echo.Context) error },
	cropCtrl interface{ List(echo.Context) error; Get(echo.Context) error },
	settingsCtrl interface{ Get(echo.Context) error; Update(echo.Context) error },
	authCtrl interface{ DevLogin(echo.Context) error; WhoAmI(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },

) *echo.Echo {
	// health stays outside the auth chain so probes keep working
	authMW := middleware.DevLogin()
	if requireAuth {
		authMW = middleware.RequireUID(true)
	}
	api := e.Group("", authMW)

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/soils", soilCtrl.Create)
	api.GET("/soils", soilCtrl.List)
	api.GET("/soils/:id", soilCtrl.Get)
	api.PUT("/soils/:id", soilCtrl.Update)
	api.DELETE("/soils/:id", soilCtrl.Delete)

	api.POST("/stations", precipCtrl.CreateStation)
	api.GET("/stations", precipCtrl.ListStations)
	api.DELETE("/stations/:id", precipCtrl.DeleteStation)
	api.GET("/stations/:id/precipitation", precipCtrl.ListObservations)
	api.POST("/stations/:id/precipitation", precipCtrl.RecordObservation)

	api.POST("/plantings", plantingCtrl.Create)
	api.GET("/plantings", plantingCtrl.List)
	api.GET("/plantings/:id", plantingCtrl.Get)
	api.POST("/plantings/:id/irrigations", plantingCtrl.LogIrrigation)
	api.GET("/plantings/:id/irrigations", plantingCtrl.ListIrrigations)

	g := e.Group("/plantings", authMW)
	g.GET("/:id/recommendation", irrigationCtrl.Recommend)
	g.GET("/:id/water-balance", irrigationCtrl.Balance)

	api.GET("/weather", weatherCtrl.List)
	api.POST("/weather", weatherCtrl.Record)
	api.GET("/eto/methods", weatherCtrl.Methods)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)

	api.GET("/settings", settingsCtrl.Get)
	api.PUT("/settings", settingsCtrl.Update)
	return e
}
