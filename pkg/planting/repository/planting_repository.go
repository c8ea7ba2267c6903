package repository

import "etflow/entities"

type PlantingRepository interface {
	Create(p *entities.Planting) error
	FindByID(id uint, uid string) (*entities.Planting, error)
	ListByUser(uid string) ([]entities.Planting, error)
	SetActive(id uint, uid string, active bool) error

	AddExecution(e *entities.IrrigationExecution) error
	// ExecutionsInRange returns the irrigation log between two YYYY-MM-DD
	// dates inclusive, oldest first.
	ExecutionsInRange(plantingID uint, from, to string) ([]entities.IrrigationExecution, error)
}
