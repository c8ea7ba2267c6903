package repository

import "etflow/entities"

type CropRepository interface {
	FindByID(id uint) (*entities.CropTemplate, error)
	List() ([]entities.CropTemplate, error)
	// Seed inserts templates that do not exist yet, matching on name.
	Seed(templates []entities.CropTemplate) error
}
