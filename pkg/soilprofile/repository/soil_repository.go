package repository

import "etflow/entities"

type SoilRepository interface {
	Create(p *entities.SoilProfile) error
	FindByID(id uint, uid string) (*entities.SoilProfile, error)
	ListByUser(uid string) ([]entities.SoilProfile, error)
	Update(p *entities.SoilProfile) error
	Delete(id uint, uid string) error
}
