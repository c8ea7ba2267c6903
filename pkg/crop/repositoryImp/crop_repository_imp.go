package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) FindByID(id uint) (*entities.CropTemplate, error) {
	var t entities.CropTemplate
	if err := r.db.First(&t, id).Error; err != nil { return nil, err }
	return &t, nil
}

func (r *cropRepo) List() ([]entities.CropTemplate, error) {
	var out []entities.CropTemplate
	return out, r.db.Order("name asc").Find(&out).Error
}

func (r *cropRepo) Seed(templates []entities.CropTemplate) error {
	for i := range templates {
		t := templates[i]
		var cur entities.CropTemplate
		err := r.db.Where("name = ?", t.Name).First(&cur).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
