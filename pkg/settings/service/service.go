package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/eto"
	"etflow/pkg/rainfall"
)

// Defaults for a settings row created on first read.
const (
	DefaultEtoMethod      = "PENMAN"
	DefaultRainfallMethod = "USDA"
	DefaultEfficiency     = 0.90
)

type Service interface {
	// Get returns the user's settings, lazily creating defaults if absent.
	Get(uid string) (*entities.IrrigationSettings, error)
	Update(uid string, patch SettingsPatch) (*entities.IrrigationSettings, error)
	// Narrow accessors for the data-access services.
	EtoMethod(uid string) (string, error)
	RainfallMethod(uid string) (string, error)
}

type SettingsPatch struct {
	EtoMethod      *string  `json:"eto_method"`
	RainfallMethod *string  `json:"rainfall_method"`
	Efficiency     *float64 `json:"efficiency"`
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Get(uid string) (*entities.IrrigationSettings, error) {
	var cfg entities.IrrigationSettings
	err := s.db.Where("user_id = ?", uid).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = entities.IrrigationSettings{
			UserID:         uid,
			EtoMethod:      DefaultEtoMethod,
			RainfallMethod: DefaultRainfallMethod,
			Efficiency:     DefaultEfficiency,
		}
		return &cfg, s.db.Create(&cfg).Error
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *service) Update(uid string, patch SettingsPatch) (*entities.IrrigationSettings, error) {
	cfg, err := s.Get(uid)
	if err != nil {
		return nil, err
	}
	if patch.EtoMethod != nil {
		if _, err := eto.ParseMethod(*patch.EtoMethod); err != nil {
			return nil, err
		}
		cfg.EtoMethod = *patch.EtoMethod
	}
	if patch.RainfallMethod != nil {
		if _, err := rainfall.ParseMethod(*patch.RainfallMethod); err != nil {
			return nil, err
		}
		cfg.RainfallMethod = *patch.RainfallMethod
	}
	if patch.Efficiency != nil {
		if *patch.Efficiency <= 0 || *patch.Efficiency > 1 {
			return nil, fmt.Errorf("efficiency %.2f outside (0,1]", *patch.Efficiency)
		}
		cfg.Efficiency = *patch.Efficiency
	}
	return cfg, s.db.Save(cfg).Error
}

func (s *service) EtoMethod(uid string) (string, error) {
	cfg, err := s.Get(uid)
	if err != nil {
		return "", err
	}
	return cfg.EtoMethod, nil
}

func (s *service) RainfallMethod(uid string) (string, error) {
	cfg, err := s.Get(uid)
	if err != nil {
		return "", err
	}
	return cfg.RainfallMethod, nil
}
