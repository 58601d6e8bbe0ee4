package services

import (
	"sync"
	"testing"

	"castlink_backend/internal/email"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProvider фиксирует отправленные подтверждения
type recordingProvider struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{done: make(chan struct{}, 8)}
}

func (p *recordingProvider) Send(msg *email.Message) error { return nil }

func (p *recordingProvider) SendTicketReceived(to, title string) error {
	p.mu.Lock()
	p.sent = append(p.sent, to)
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func (p *recordingProvider) Validate() error { return nil }

func TestCreateTicket(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	provider := newRecordingProvider()
	svc := NewTicketService(repositories.NewTicketRepository(), provider)

	ticketID, err := svc.CreateTicket(db, &dto.CreateTicketRequest{
		Email:       "model@test.com",
		MobileNo:    "+77010000001",
		Title:       "Cannot log in",
		Description: "The login page keeps rejecting my password",
	})
	require.NoError(t, err)
	assert.NotZero(t, ticketID)

	tickets, err := svc.ListTickets(db)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Cannot log in", tickets[0].Title)

	// Подтверждение уходит асинхронно
	<-provider.done
	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Equal(t, []string{"model@test.com"}, provider.sent)
}

func TestListTickets_Order(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewTicketService(repositories.NewTicketRepository(), email.NewNoopProvider())

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateTicket(db, &dto.CreateTicketRequest{
			Email:       "model@test.com",
			MobileNo:    "+77010000001",
			Title:       title,
			Description: "d",
		})
		require.NoError(t, err)
	}

	tickets, err := svc.ListTickets(db)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, "first", tickets[0].Title)
	assert.Equal(t, "third", tickets[2].Title)
}
