package realtime

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/security"
)

// Handler handles WebSocket connections
type Handler struct {
	config      *config.WebSocketConfig
	hub         *Hub
	upgrader    websocket.Upgrader
	jwtProvider *security.JWTProvider
	logger      *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(
	cfg *config.WebSocketConfig,
	hub *Hub,
	jwtProvider *security.JWTProvider,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		config:      cfg,
		hub:         hub,
		jwtProvider: jwtProvider,
		logger:      logger,
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:    cfg.ReadBufferSize,
		WriteBufferSize:   cfg.WriteBufferSize,
		HandshakeTimeout:  cfg.HandshakeTimeout,
		EnableCompression: cfg.EnableCompression,
		CheckOrigin:       h.checkOrigin,
	}

	return h
}

// RegisterRoutes registers WebSocket routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET(h.config.Path, h.handleWebSocket)
	router.GET(h.config.Path+"/status", h.handleStatus)
}

// handleWebSocket handles WebSocket upgrade requests
func (h *Handler) handleWebSocket(c *gin.Context) {
	var userID string
	var isAdmin bool

	token := c.Query("access-token")
	if token == "" {
		token = c.GetHeader("access-token")
	}

	if token != "" && h.jwtProvider != nil {
		claims, err := h.jwtProvider.ValidateAccessToken(token)
		if err == nil {
			userID = claims.UserID
			isAdmin = claims.Role == entity.RoleAdmin
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection",
			zap.Error(err),
		)
		return
	}

	client := NewClient(h.hub, conn, userID, isAdmin, h.logger)
	h.hub.register <- client

	client.Send(&Message{
		Type:  MessageTypeEvent,
		Event: EventConnected,
		Data: map[string]any{
			"clientId": client.ID,
			"userId":   userID,
		},
		Timestamp: time.Now(),
	})

	go client.WritePump()
	go client.ReadPump()
}

// handleStatus returns WebSocket hub status
func (h *Handler) handleStatus(c *gin.Context) {
	metrics := h.hub.GetMetrics()

	c.JSON(http.StatusOK, gin.H{
		"activeConnections": metrics.ActiveConnections,
		"totalConnections":  metrics.TotalConnections,
		"totalMessages":     metrics.TotalMessages,
		"totalBroadcasts":   metrics.TotalBroadcasts,
		"activeGroups":      metrics.TotalGroups,
		"onlineUsers":       len(h.hub.GetOnlineUsers()),
	})
}

// checkOrigin checks if the origin is allowed
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range h.config.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}
