package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bukutamu/internal/models/db_models"
	"bukutamu/internal/repositories"
	"bukutamu/pkg/utils"
)

type fakeGuestRepo struct {
	guests    map[string]*db_models.Guest
	markCalls int
	raceOnce  bool
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[string]*db_models.Guest)}
}

func (f *fakeGuestRepo) Insert(ctx context.Context, guest *db_models.Guest) error {
	if _, exists := f.guests[guest.QRCode]; exists {
		return repositories.ErrDuplicateQRCode
	}
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	guest.CreatedAt = time.Now().Unix()
	stored := *guest
	f.guests[guest.QRCode] = &stored
	return nil
}

func (f *fakeGuestRepo) FindByQRCode(ctx context.Context, qrCode string) (*db_models.Guest, error) {
	guest, ok := f.guests[qrCode]
	if !ok {
		return nil, nil
	}
	copied := *guest
	return &copied, nil
}

func (f *fakeGuestRepo) FindByID(ctx context.Context, id string) (*db_models.Guest, error) {
	for _, guest := range f.guests {
		if guest.ID.String() == id {
			copied := *guest
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) ListAll(ctx context.Context) ([]db_models.Guest, error) {
	var out []db_models.Guest
	for _, guest := range f.guests {
		out = append(out, *guest)
	}
	return out, nil
}

func (f *fakeGuestRepo) ListPending(ctx context.Context, since time.Time, limit int) ([]db_models.Guest, error) {
	var out []db_models.Guest
	for _, guest := range f.guests {
		if !guest.CheckedIn && guest.CreatedAt >= since.Unix() {
			out = append(out, *guest)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) MarkCheckedIn(ctx context.Context, qrCode string, at time.Time, notes string) (*db_models.Guest, error) {
	f.markCalls++
	guest, ok := f.guests[qrCode]
	if !ok || guest.CheckedIn {
		return nil, repositories.ErrNoPendingGuest
	}
	if f.raceOnce {
		// Simulate a concurrent scan committing between the service's read
		// and its conditional update.
		f.raceOnce = false
		guest.CheckedIn = true
		checkedAt := at
		guest.CheckedInAt = &checkedAt
		return nil, repositories.ErrNoPendingGuest
	}
	guest.CheckedIn = true
	checkedAt := at
	guest.CheckedInAt = &checkedAt
	copied := *guest
	return &copied, nil
}

type fakeNotifier struct {
	notified []db_models.Guest
}

func (f *fakeNotifier) NotifyCheckin(guest db_models.Guest) {
	f.notified = append(f.notified, guest)
}

func registeredGuest(qrCode string) *db_models.Guest {
	return &db_models.Guest{
		Name:     "Andi",
		Whatsapp: "081234567890",
		To:       "ibu-siti",
		Purpose:  "meeting",
		QRCode:   qrCode,
	}
}

func TestVerifyMissingToken(t *testing.T) {
	repo := newFakeGuestRepo()
	notifier := &fakeNotifier{}
	svc := NewCheckinService(repo, notifier)

	_, err := svc.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, utils.ErrMissingField)
	assert.Zero(t, repo.markCalls)
}

func TestVerifyUnknownTokenMutatesNothing(t *testing.T) {
	repo := newFakeGuestRepo()
	notifier := &fakeNotifier{}
	svc := NewCheckinService(repo, notifier)

	guest, err := svc.Verify(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, utils.ErrGuestNotFound)
	assert.Nil(t, guest)
	assert.Zero(t, repo.markCalls)
	assert.Empty(t, notifier.notified)
}

func TestVerifyTransitionsOnce(t *testing.T) {
	repo := newFakeGuestRepo()
	notifier := &fakeNotifier{}
	svc := NewCheckinService(repo, notifier)
	require.NoError(t, repo.Insert(context.Background(), registeredGuest("token-x")))

	guest, err := svc.Verify(context.Background(), "token-x")
	require.NoError(t, err)
	assert.True(t, guest.CheckedIn)
	require.NotNil(t, guest.CheckedInAt)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, "Andi", notifier.notified[0].Name)

	// Second sequential scan: conflict, state unchanged, no new notification.
	again, err := svc.Verify(context.Background(), "token-x")
	assert.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)
	require.NotNil(t, again)
	assert.True(t, again.CheckedIn)
	assert.Equal(t, guest.CheckedInAt.Unix(), again.CheckedInAt.Unix())
	assert.Len(t, notifier.notified, 1)
}

func TestVerifyLosingARaceReportsConflict(t *testing.T) {
	repo := newFakeGuestRepo()
	repo.raceOnce = true
	notifier := &fakeNotifier{}
	svc := NewCheckinService(repo, notifier)
	require.NoError(t, repo.Insert(context.Background(), registeredGuest("token-y")))

	guest, err := svc.Verify(context.Background(), "token-y")
	assert.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)
	require.NotNil(t, guest)
	assert.True(t, guest.CheckedIn)
	assert.Empty(t, notifier.notified)
}
