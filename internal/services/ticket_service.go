package services

import (
	"castlink_backend/internal/email"
	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TicketService interface {
	CreateTicket(db *gorm.DB, req *dto.CreateTicketRequest) (uint, error)
	ListTickets(db *gorm.DB) ([]models.Ticket, error)
}

type TicketServiceImpl struct {
	ticketRepo    repositories.TicketRepository
	emailProvider email.Provider
}

func NewTicketService(ticketRepo repositories.TicketRepository, emailProvider email.Provider) TicketService {
	return &TicketServiceImpl{
		ticketRepo:    ticketRepo,
		emailProvider: emailProvider,
	}
}

// CreateTicket сохраняет тикет и асинхронно шлёт подтверждение на почту.
// Ошибка отправки письма не влияет на результат запроса.
func (s *TicketServiceImpl) CreateTicket(db *gorm.DB, req *dto.CreateTicketRequest) (uint, error) {
	ticket := &models.Ticket{
		Email:       req.Email,
		MobileNo:    req.MobileNo,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.ticketRepo.Create(db, ticket); err != nil {
		return 0, apperrors.InternalError(err)
	}

	if s.emailProvider != nil {
		go func(to, title string) {
			if err := s.emailProvider.SendTicketReceived(to, title); err != nil {
				logger.WithError(err).Warn("failed to send ticket acknowledgement")
			}
		}(ticket.Email, ticket.Title)
	}

	return ticket.ID, nil
}

func (s *TicketServiceImpl) ListTickets(db *gorm.DB) ([]models.Ticket, error) {
	tickets, err := s.ticketRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}
