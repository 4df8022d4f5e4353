package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHub(t *testing.T) *Hub {
	h := NewHub(zap.NewNop())
	go h.Run()
	t.Cleanup(h.Stop)
	return h
}

func connect(t *testing.T, h *Hub, userID string, isAdmin bool) *Client {
	t.Helper()
	c := NewClient(h, nil, userID, isAdmin, zap.NewNop())
	h.register <- c
	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return h.clients[c]
	}, time.Second, 5*time.Millisecond, "client was not registered")
	return c
}

func receive(t *testing.T, c *Client) *Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func assertSilent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewHub(t *testing.T) {
	h := NewHub(zap.NewNop())
	assert.NotNil(t, h)
	assert.Equal(t, 0, h.GetClientCount())
}

func TestHub_RegisterTracksUser(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	assert.Equal(t, 1, h.GetClientCount())
	assert.True(t, h.IsUserOnline("user-1"))
	assert.False(t, h.IsUserOnline("user-2"))
	assert.Contains(t, h.GetOnlineUsers(), "user-1")
	_ = c
}

func TestHub_AdminJoinsAdminsGroup(t *testing.T) {
	h := newTestHub(t)
	admin := connect(t, h, "admin-1", true)
	user := connect(t, h, "user-1", false)

	assert.True(t, admin.Groups[GroupAdmins])
	assert.False(t, user.Groups[GroupAdmins])
}

func TestHub_PushToUser_OnlyThatUser(t *testing.T) {
	h := newTestHub(t)
	target := connect(t, h, "user-1", false)
	other := connect(t, h, "user-2", false)

	h.PushToUser("user-1", EventCartUpdated, map[string]string{"hello": "world"})

	msg := receive(t, target)
	assert.Equal(t, MessageTypeEvent, msg.Type)
	assert.Equal(t, EventCartUpdated, msg.Event)
	assertSilent(t, other)
}

func TestHub_PushToUser_AllConnectionsOfUser(t *testing.T) {
	h := newTestHub(t)
	first := connect(t, h, "user-1", false)
	second := connect(t, h, "user-1", false)

	h.PushToUser("user-1", EventNewNotification, nil)

	receive(t, first)
	receive(t, second)
}

func TestHub_PushToAdmins_OnlyAdmins(t *testing.T) {
	h := newTestHub(t)
	admin := connect(t, h, "admin-1", true)
	user := connect(t, h, "user-1", false)

	h.PushToAdmins(EventNewOrder, map[string]string{"orderId": "abc"})

	msg := receive(t, admin)
	assert.Equal(t, EventNewOrder, msg.Event)
	assertSilent(t, user)
}

func TestHub_PushBroadcast_AllClients(t *testing.T) {
	h := newTestHub(t)
	admin := connect(t, h, "admin-1", true)
	user := connect(t, h, "user-1", false)

	h.PushBroadcast(EventNewCourse, nil)

	receive(t, admin)
	receive(t, user)
}

func TestHub_JoinAndLeaveGroup(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	h.JoinGroup(c, "course-updates")
	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return h.groupClients["course-updates"][c]
	}, time.Second, 5*time.Millisecond)

	msg := NewEventMessage(EventCourseUpdated, nil)
	msg.Group = "course-updates"
	h.Broadcast(msg)
	receive(t, c)

	h.LeaveGroup(c, "course-updates")
	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return !c.Groups["course-updates"]
	}, time.Second, 5*time.Millisecond)

	h.Broadcast(msg)
	assertSilent(t, c)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	h.unregister <- c
	require.Eventually(t, func() bool {
		return h.GetClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	assert.False(t, h.IsUserOnline("user-1"))

	// The send channel is closed on unregister
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_AdminLeavesAdminsGroupOnDisconnect(t *testing.T) {
	h := newTestHub(t)
	admin := connect(t, h, "admin-1", true)

	h.unregister <- admin
	require.Eventually(t, func() bool {
		return h.GetClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	// No admins left; the push goes nowhere without panicking
	assert.NotPanics(t, func() {
		h.PushToAdmins(EventNewOrder, nil)
	})
}

func TestHub_GetMetrics(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	h.PushToUser("user-1", EventCartUpdated, nil)
	receive(t, c)

	require.Eventually(t, func() bool {
		m := h.GetMetrics()
		return m.TotalConnections == 1 &&
			m.ActiveConnections == 1 &&
			m.TotalBroadcasts == 1 &&
			m.TotalMessages == 1
	}, time.Second, 5*time.Millisecond)

	h.unregister <- c
	require.Eventually(t, func() bool {
		return h.GetMetrics().ActiveConnections == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHub_PushToOfflineUser_DoesNotBlock(t *testing.T) {
	h := newTestHub(t)
	assert.NotPanics(t, func() {
		h.PushToUser("nobody", EventCartUpdated, nil)
	})
}
