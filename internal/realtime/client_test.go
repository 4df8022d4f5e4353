package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_HandlePing(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	c.handleMessage(&Message{Type: MessageTypePing})

	msg := receive(t, c)
	assert.Equal(t, MessageTypePong, msg.Type)
}

func TestClient_Subscribe(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	c.handleMessage(&Message{Type: MessageTypeSubscribe, Data: "course-updates"})

	msg := receive(t, c)
	assert.Equal(t, MessageTypeAck, msg.Type)

	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return h.groupClients["course-updates"][c]
	}, time.Second, 5*time.Millisecond)
}

func TestClient_SubscribeToAdminsRejected(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	c.handleMessage(&Message{Type: MessageTypeSubscribe, Data: GroupAdmins})

	// No ack and no membership
	assertSilent(t, c)
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	assert.False(t, h.groupClients[GroupAdmins][c])
}

func TestClient_Unsubscribe(t *testing.T) {
	h := newTestHub(t)
	c := connect(t, h, "user-1", false)

	c.handleMessage(&Message{Type: MessageTypeSubscribe, Data: "course-updates"})
	receive(t, c)

	c.handleMessage(&Message{Type: MessageTypeUnsubscribe, Data: "course-updates"})
	msg := receive(t, c)
	assert.Equal(t, MessageTypeAck, msg.Type)

	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return !c.Groups["course-updates"]
	}, time.Second, 5*time.Millisecond)
}

func TestClient_SendDropsWhenBufferFull(t *testing.T) {
	h := NewHub(zap.NewNop())
	c := NewClient(h, nil, "user-1", false, zap.NewNop())

	assert.NotPanics(t, func() {
		for i := 0; i < sendBufferSize+10; i++ {
			c.Send(&Message{Type: MessageTypeEvent})
		}
	})
}

func TestNewEventMessage(t *testing.T) {
	msg := NewEventMessage(EventNewOrder, map[string]string{"orderId": "abc"})
	assert.Equal(t, MessageTypeEvent, msg.Type)
	assert.Equal(t, EventNewOrder, msg.Event)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
}
