package workers

import (
	"context"
	"time"

	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

// SuspensionWorker периодически снимает истёкшие приостановки. Основная
// проверка делается на каждом запросе; воркер лишь подчищает аккаунты,
// которые давно не логинились, чтобы админские списки показывали
// актуальный статус.
type SuspensionWorker struct {
	db       *gorm.DB
	interval time.Duration
}

func NewSuspensionWorker(db *gorm.DB, interval time.Duration) *SuspensionWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SuspensionWorker{db: db, interval: interval}
}

// Start запускает фоновую очистку до отмены контекста
func (w *SuspensionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SuspensionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Suspension worker stopped")
			return
		case <-ticker.C:
			w.sweep(&models.User{}, "users")
			w.sweep(&models.ProductionCompany{}, "production companies")
		}
	}
}

func (w *SuspensionWorker) sweep(model interface{}, label string) {
	result := w.db.Model(model).
		Where("suspended = ? AND suspended_to IS NOT NULL AND suspended_to < ?", true, time.Now()).
		Updates(map[string]interface{}{
			"suspended":      false,
			"suspended_from": nil,
			"suspended_to":   nil,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		logger.WithError(result.Error).Error("Failed to sweep expired suspensions", "table", label)
		return
	}
	if result.RowsAffected > 0 {
		logger.Info("Cleared expired suspensions", "table", label, "count", result.RowsAffected)
	}
}
