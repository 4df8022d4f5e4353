package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Hub maintains active clients and routes push events
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Clients by user ID (ObjectID hex)
	userClients map[string]map[*Client]bool

	// Clients by group
	groupClients map[string]map[*Client]bool

	// Inbound messages from clients and services
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Group operations
	joinGroup  chan *GroupOperation
	leaveGroup chan *GroupOperation

	// Shutdown signal
	done chan struct{}

	mutex sync.RWMutex

	logger *zap.Logger

	metrics *HubMetrics
}

// HubMetrics holds hub metrics
type HubMetrics struct {
	TotalConnections  int64
	ActiveConnections int64
	TotalMessages     int64
	TotalBroadcasts   int64
	TotalGroups       int
	mutex             sync.RWMutex
}

// GroupOperation represents a group join/leave operation
type GroupOperation struct {
	Client *Client
	Group  string
}

// NewHub creates a new hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		userClients:  make(map[string]map[*Client]bool),
		groupClients: make(map[string]map[*Client]bool),
		broadcast:    make(chan *Message, 256),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		joinGroup:    make(chan *GroupOperation),
		leaveGroup:   make(chan *GroupOperation),
		done:         make(chan struct{}),
		logger:       logger,
		metrics:      &HubMetrics{},
	}
}

// Run starts the hub loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case op := <-h.joinGroup:
			h.handleJoinGroup(op)

		case op := <-h.leaveGroup:
			h.handleLeaveGroup(op)

		case message := <-h.broadcast:
			h.handleBroadcast(message)

		case <-h.done:
			return
		}
	}
}

// Stop stops the hub loop
func (h *Hub) Stop() {
	close(h.done)
}

// registerClient registers a new client
func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true

	if client.UserID != "" {
		if _, ok := h.userClients[client.UserID]; !ok {
			h.userClients[client.UserID] = make(map[*Client]bool)
		}
		h.userClients[client.UserID][client] = true
	}

	// Admin connections join the admins group so order events reach them
	if client.IsAdmin {
		if _, ok := h.groupClients[GroupAdmins]; !ok {
			h.groupClients[GroupAdmins] = make(map[*Client]bool)
		}
		h.groupClients[GroupAdmins][client] = true
		client.Groups[GroupAdmins] = true
	}

	h.metrics.mutex.Lock()
	h.metrics.TotalConnections++
	h.metrics.ActiveConnections++
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client registered",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
	)
}

// unregisterClient unregisters a client
func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if client.UserID != "" {
			if clients, ok := h.userClients[client.UserID]; ok {
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.userClients, client.UserID)
				}
			}
		}

		for group, clients := range h.groupClients {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.groupClients, group)
			}
		}

		h.metrics.mutex.Lock()
		h.metrics.ActiveConnections--
		h.metrics.mutex.Unlock()

		h.logger.Debug("Client unregistered",
			zap.String("client_id", client.ID),
		)
	}
}

// handleJoinGroup handles a group join operation
func (h *Hub) handleJoinGroup(op *GroupOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.groupClients[op.Group]; !ok {
		h.groupClients[op.Group] = make(map[*Client]bool)
	}
	h.groupClients[op.Group][op.Client] = true
	op.Client.Groups[op.Group] = true

	h.metrics.mutex.Lock()
	h.metrics.TotalGroups = len(h.groupClients)
	h.metrics.mutex.Unlock()
}

// handleLeaveGroup handles a group leave operation
func (h *Hub) handleLeaveGroup(op *GroupOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if clients, ok := h.groupClients[op.Group]; ok {
		delete(clients, op.Client)
		if len(clients) == 0 {
			delete(h.groupClients, op.Group)
		}
	}
	delete(op.Client.Groups, op.Group)

	h.metrics.mutex.Lock()
	h.metrics.TotalGroups = len(h.groupClients)
	h.metrics.mutex.Unlock()
}

// handleBroadcast routes a message to its target connections
func (h *Hub) handleBroadcast(message *Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	h.metrics.mutex.Lock()
	h.metrics.TotalBroadcasts++
	h.metrics.mutex.Unlock()

	var targets map[*Client]bool

	switch {
	case message.Group != "":
		targets = h.groupClients[message.Group]
	case message.UserID != "":
		targets = h.userClients[message.UserID]
	default:
		targets = h.clients
	}

	for client := range targets {
		select {
		case client.send <- message:
			h.metrics.mutex.Lock()
			h.metrics.TotalMessages++
			h.metrics.mutex.Unlock()
		default:
			// Client's send buffer is full, skip
			h.logger.Warn("Client send buffer full",
				zap.String("client_id", client.ID),
			)
		}
	}
}

// Broadcast sends a message to all clients
func (h *Hub) Broadcast(message *Message) {
	h.broadcast <- message
}

// PushToUser sends an event to all connections of a user
func (h *Hub) PushToUser(userID string, event string, data any) {
	message := NewEventMessage(event, data)
	message.UserID = userID
	h.broadcast <- message
}

// PushToAdmins sends an event to all admin connections
func (h *Hub) PushToAdmins(event string, data any) {
	message := NewEventMessage(event, data)
	message.Group = GroupAdmins
	h.broadcast <- message
}

// PushBroadcast sends an event to all connections
func (h *Hub) PushBroadcast(event string, data any) {
	h.broadcast <- NewEventMessage(event, data)
}

// JoinGroup adds a client to a group
func (h *Hub) JoinGroup(client *Client, group string) {
	h.joinGroup <- &GroupOperation{Client: client, Group: group}
}

// LeaveGroup removes a client from a group
func (h *Hub) LeaveGroup(client *Client, group string) {
	h.leaveGroup <- &GroupOperation{Client: client, Group: group}
}

// GetClientCount returns the number of active clients
func (h *Hub) GetClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() HubMetrics {
	h.metrics.mutex.RLock()
	defer h.metrics.mutex.RUnlock()
	return HubMetrics{
		TotalConnections:  h.metrics.TotalConnections,
		ActiveConnections: h.metrics.ActiveConnections,
		TotalMessages:     h.metrics.TotalMessages,
		TotalBroadcasts:   h.metrics.TotalBroadcasts,
		TotalGroups:       h.metrics.TotalGroups,
	}
}

// IsUserOnline checks if a user has at least one active connection
func (h *Hub) IsUserOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	clients, ok := h.userClients[userID]
	return ok && len(clients) > 0
}

// GetOnlineUsers returns the IDs of users with active connections
func (h *Hub) GetOnlineUsers() []string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	users := make([]string, 0, len(h.userClients))
	for userID := range h.userClients {
		users = append(users, userID)
	}
	return users
}
