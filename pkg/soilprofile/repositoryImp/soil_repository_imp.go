package repositoryImp

import (
	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/soilprofile/repository"
)

type soilRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilRepository { return &soilRepo{db} }

func (r *soilRepo) Create(p *entities.SoilProfile) error { return r.db.Create(p).Error }

func (r *soilRepo) FindByID(id uint, uid string) (*entities.SoilProfile, error) {
	var p entities.SoilProfile
	if err := r.db.Where("soil_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil { return nil, err }
	return &p, nil
}

func (r *soilRepo) ListByUser(uid string) ([]entities.SoilProfile, error) {
	var out []entities.SoilProfile
	return out, r.db.Where("user_id = ?", uid).Order("soil_id asc").Find(&out).Error
}

func (r *soilRepo) Update(p *entities.SoilProfile) error { return r.db.Save(p).Error }

func (r *soilRepo) Delete(id uint, uid string) error {
	return r.db.Where("soil_id = ? AND user_id = ?", id, uid).Delete(&entities.SoilProfile{}).Error
}
