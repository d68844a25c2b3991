package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

// Full pass over the real repositories: register a guest, watch the pending
// schedule, check the guest in, and find the audit entry in history.
func TestGuestbookFlow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&db_models.Recipient{}, &db_models.Guest{}, &db_models.ReceptionLog{}))

	guestRepo := repositories.NewGuestRepository(db)
	recipientRepo := repositories.NewRecipientRepository(db)
	logRepo := repositories.NewReceptionLogRepository(db)

	ctx := context.Background()
	require.NoError(t, recipientRepo.Insert(ctx, &db_models.Recipient{
		Name: "ibu-siti", Position: "HRD", Whatsapp: "6281234567891", IsActive: true,
	}))

	notifier := &fakeNotifier{}
	guestService := NewGuestService(guestRepo, recipientRepo)
	checkinService := NewCheckinService(guestRepo, notifier)
	scheduleService := NewScheduleService(guestRepo)
	historyService := NewHistoryService(logRepo)

	registered, err := guestService.RegisterGuest(ctx, validRegistration())
	require.NoError(t, err)
	token := registered.QRCode
	require.Len(t, token, 32)
	require.False(t, registered.Guest.CheckedIn)

	schedule, err := scheduleService.GetSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	require.Equal(t, "Andi", schedule[0].Nama)
	require.Equal(t, StatusWaiting, schedule[0].Status)

	verified, err := checkinService.Verify(ctx, token)
	require.NoError(t, err)
	require.True(t, verified.CheckedIn)
	require.NotNil(t, verified.CheckedInAt)
	require.Len(t, notifier.notified, 1)

	// A second scan conflicts and leaves everything as it was.
	_, err = checkinService.Verify(ctx, token)
	require.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)

	history, err := historyService.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, db_models.ActionCheckin, history[0].Action)
	require.Equal(t, StatusCheckinDone, history[0].Status)
	require.Equal(t, token, history[0].QRCode)
	require.Contains(t, history[0].Notes, "Check-in oleh resepsionis")

	// The checked-in guest left the pending schedule.
	schedule, err = scheduleService.GetSchedule(ctx)
	require.NoError(t, err)
	require.Empty(t, schedule)
}
