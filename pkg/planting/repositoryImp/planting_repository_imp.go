package repositoryImp

import (
	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/planting/repository"
)

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

func (r *plantingRepo) Create(p *entities.Planting) error { return r.db.Create(p).Error }

func (r *plantingRepo) FindByID(id uint, uid string) (*entities.Planting, error) {
	var p entities.Planting
	if err := r.db.Where("planting_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil { return nil, err }
	return &p, nil
}

func (r *plantingRepo) ListByUser(uid string) ([]entities.Planting, error) {
	var out []entities.Planting
	return out, r.db.Where("user_id = ?", uid).Order("planting_id asc").Find(&out).Error
}

func (r *plantingRepo) SetActive(id uint, uid string, active bool) error {
	return r.db.Model(&entities.Planting{}).
		Where("planting_id = ? AND user_id = ?", id, uid).
		Update("active", active).Error
}

func (r *plantingRepo) AddExecution(e *entities.IrrigationExecution) error {
	return r.db.Create(e).Error
}

func (r *plantingRepo) ExecutionsInRange(plantingID uint, from, to string) ([]entities.IrrigationExecution, error) {
	var out []entities.IrrigationExecution
	return out, r.db.Where("planting_id = ? AND date >= ? AND date <= ?", plantingID, from, to).
		Order("date asc").Find(&out).Error
}
