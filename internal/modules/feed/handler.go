package feed

import (
	"log"
	"net/http"
	"time"

	"hotelbooking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the frontend host is fixed.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub     *Hub
	jwt     *jwt.Service
	service *Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service, service *Service) *Handler {
	return &Handler{hub: hub, jwt: jwtService, service: service}
}

// HandleWebSocket serves GET /ws/trips?token=JWT. Browsers cannot set
// headers on websocket requests, so the token rides in the query.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed_upgrade_fail err=%v", err)
		return
	}

	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID)
	}()

	// First snapshot right away, the ticker covers the rest.
	h.service.PushSnapshot(c.Request.Context(), userID, time.Now())

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	go h.pingLoop(userID, conn)

	h.readLoop(conn)
}

// pingLoop keeps the connection alive. Pings go through the hub so they
// never interleave with a snapshot write on the same connection.
func (h *Handler) pingLoop(userID int64, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !h.hub.Ping(userID, conn) {
			return
		}
	}
}

// readLoop drains client frames until the connection drops. The feed is
// push-only; inbound payloads are discarded.
func (h *Handler) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
