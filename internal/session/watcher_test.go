package session

import (
	"context"
	"testing"
	"time"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/mock"
	"github.com/festivize/festivize/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpiryWatcher_ForcesLogoutOnExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockServerGateway(ctrl)
	token := signedToken(t, models.RoleUser, time.Hour)
	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(token, "", nil)
	gateway.EXPECT().SetToken(token)
	gateway.EXPECT().ClearToken()

	m := NewManager(gateway, nil, logger.Nop())
	require.True(t, m.Login(context.Background(), "kira@example.com", "pw").OK)
	events := m.Subscribe()

	// Move the clock past expiry, then let the watcher notice.
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	w := NewExpiryWatcher(m, 5*time.Millisecond)
	w.Start(context.Background())
	defer w.Stop()

	select {
	case ev := <-events:
		assert.Nil(t, ev.Identity)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not force a logout")
	}

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

func TestExpiryWatcher_DoesNothingWhileFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockServerGateway(ctrl)
	token := signedToken(t, models.RoleUser, time.Hour)
	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(token, "", nil)
	gateway.EXPECT().SetToken(token)

	m := NewManager(gateway, nil, logger.Nop())
	require.True(t, m.Login(context.Background(), "kira@example.com", "pw").OK)

	w := NewExpiryWatcher(m, 5*time.Millisecond)
	w.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	w.Stop()

	assert.True(t, m.IsAuthenticated())
}

func TestExpiryWatcher_StopIsSafeWhenNotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewManager(mock.NewMockServerGateway(ctrl), nil, logger.Nop())
	w := NewExpiryWatcher(m, 0)

	w.Stop()
	assert.Equal(t, DefaultExpiryInterval, w.interval)
}
