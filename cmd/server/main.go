package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"etflow/config"
	"etflow/database"
	"etflow/router"

	// Auth + Health
	authCtrlImp "etflow/pkg/auth/controllerImp"
	healthCtrlImp "etflow/pkg/health/controllerImp"

	// Soil profiles
	soilCtrlImp "etflow/pkg/soilprofile/controllerImp"
	soilRepoImp "etflow/pkg/soilprofile/repositoryImp"

	// Crop templates
	"etflow/pkg/crop"
	cropCtrlImp "etflow/pkg/crop/controllerImp"
	cropRepoImp "etflow/pkg/crop/repositoryImp"

	// Plantings
	plantingCtrlImp "etflow/pkg/planting/controllerImp"
	plantingRepoImp "etflow/pkg/planting/repositoryImp"

	// Weather (NASA POWER + manual)
	"etflow/pkg/weather/nasapower"
	weatherCtrlImp "etflow/pkg/weather/controllerImp"
	weatherRepoImp "etflow/pkg/weather/repositoryImp"
	weatherSvcImp "etflow/pkg/weather/serviceImp"

	// Precipitation (CHIRPS + manual)
	"etflow/pkg/precip/chirps"
	precipCtrlImp "etflow/pkg/precip/controllerImp"
	precipRepoImp "etflow/pkg/precip/repositoryImp"
	precipSvcImp "etflow/pkg/precip/serviceImp"

	// Settings
	settingsCtrlImp "etflow/pkg/settings/controllerImp"
	settingsSvc "etflow/pkg/settings/service"

	// Irrigation engine
	irrigationCtrlImp "etflow/pkg/irrigation/controllerImp"
	irrSvc "etflow/pkg/irrigation/service"
	irrigationSvcImp "etflow/pkg/irrigation/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Crop templates from tabular config
	cropRepo := cropRepoImp.New(db)
	if cfg.CropConfigCSV != "" {
		if tpls, err := crop.LoadTemplatesCSV(cfg.CropConfigCSV); err != nil {
			log.Printf("[cfg] crop csv warn: %v", err)
		} else if err := cropRepo.Seed(tpls); err != nil {
			log.Printf("[cfg] crop seed warn: %v", err)
		}
	}
	if cfg.CropConfigXLSX != "" {
		if tpls, err := crop.LoadTemplatesXLSX(cfg.CropConfigXLSX); err != nil {
			log.Printf("[cfg] crop xlsx warn: %v", err)
		} else if err := cropRepo.Seed(tpls); err != nil {
			log.Printf("[cfg] crop seed warn: %v", err)
		}
	}

	// 5) Remote sources
	timeout := time.Duration(cfg.RemoteTimeoutSec) * time.Second
	power := nasapower.New(cfg.NasaPowerURL, timeout)
	rain := chirps.New(cfg.ChirpsURL, timeout)

	// 6) Repos/Services
	settings := settingsSvc.New(db)

	wRepo := weatherRepoImp.New(db)
	wSvc := weatherSvcImp.New(wRepo, power, settings)

	stRepo := precipRepoImp.NewStation(db)
	pRepo := precipRepoImp.NewPrecip(db)
	pSvc := precipSvcImp.New(pRepo, rain, settings)

	soilRepo := soilRepoImp.New(db)
	plantRepo := plantingRepoImp.New(db)

	policy := irrSvc.PolicyHybrid
	if cfg.DataPolicy == "strict" {
		policy = irrSvc.PolicyStrict
	}
	iSvc := irrigationSvcImp.New(policy, plantRepo, soilRepo, stRepo, cropRepo, wSvc, pSvc, settings)

	// 7) Controllers
	soilCtrl := soilCtrlImp.New(soilRepo)
	precipCtrl := precipCtrlImp.New(stRepo, pSvc)
	plantingCtrl := plantingCtrlImp.New(plantRepo)
	irrigationCtrl := irrigationCtrlImp.New(iSvc)
	weatherCtrl := weatherCtrlImp.New(wSvc)
	cropCtrl := cropCtrlImp.New(cropRepo)
	settingsCtrl := settingsCtrlImp.New(settings)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		cfg.RequireAuth,
		soilCtrl,
		precipCtrl,
		plantingCtrl,
		irrigationCtrl,
		weatherCtrl,
		cropCtrl,
		settingsCtrl,
		authCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
