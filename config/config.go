package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	Timezone         string
	DBPath           string
	NasaPowerURL     string
	ChirpsURL        string
	RemoteTimeoutSec int
	CropConfigCSV    string
	CropConfigXLSX   string
	DataPolicy       string // hybrid|strict
	RequireAuth      bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	timeout, err := strconv.Atoi(get("REMOTE_TIMEOUT_SEC", "15"))
	if err != nil || timeout <= 0 {
		timeout = 15
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Asia/Bangkok"),
		DBPath:           get("DB_PATH", "etflow.db"),
		NasaPowerURL:     get("NASA_POWER_URL", "https://power.larc.nasa.gov/api/temporal/daily/point"),
		ChirpsURL:        get("CHIRPS_URL", ""),
		RemoteTimeoutSec: timeout,
		CropConfigCSV:    get("CROP_CONFIG_CSV", ""),
		CropConfigXLSX:   get("CROP_CONFIG_XLSX", ""),
		DataPolicy:       get("DATA_POLICY", "hybrid"),
		RequireAuth:      get("REQUIRE_AUTH", "false") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
