package repositories

import (
	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

// TicketRepository stores support tickets. Tickets are append-only; there is
// no update or delete path.
type TicketRepository interface {
	Create(db *gorm.DB, ticket *models.Ticket) error
	FindAll(db *gorm.DB) ([]models.Ticket, error)
}

type TicketRepositoryImpl struct{}

func NewTicketRepository() TicketRepository {
	return &TicketRepositoryImpl{}
}

func (r *TicketRepositoryImpl) Create(db *gorm.DB, ticket *models.Ticket) error {
	return db.Create(ticket).Error
}

func (r *TicketRepositoryImpl) FindAll(db *gorm.DB) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := db.Order("id ASC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}
