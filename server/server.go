package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"spice-garden/bot"
	"spice-garden/config"
)

//go:embed index.html
var indexHTML []byte

const sessionCookieName = "session_id"

// Server is the web front end: the embedded chat widget, the /chat JSON
// endpoint it talks to, and a /ws variant of the same contract.
type Server struct {
	httpServer *http.Server
	upgrader   websocket.Upgrader
	bot        *bot.Bot
	config     *config.Config
}

func New(cfg *config.Config, b *bot.Bot) *Server {
	s := &Server{
		bot:    b,
		config: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				for _, allowed := range cfg.HTTP.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Start begins listening for connections.
func (s *Server) Start() error {
	log.Printf("Server starting on port %d", s.config.HTTP.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := s.webSessionID(w, r)
	reply := s.bot.Handle(r.Context(), sessionID, req.Query)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(chatResponse{Reply: reply}); err != nil {
		log.Printf("chat session=%s: encode response: %v", sessionID, err)
	}
}

// webSessionID reads the session cookie, minting a fresh ID on first contact.
func (s *Server) webSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return "web:" + c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return "web:" + id
}

// handleWebSocket serves one chat session per connection: each text message
// is a query, each reply comes back as {"reply": ...}.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := "ws:" + uuid.New().String()
	log.Printf("websocket session started: %s", sessionID)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket session=%s: read: %v", sessionID, err)
			}
			return
		}

		reply := s.bot.Handle(r.Context(), sessionID, string(message))
		if err := conn.WriteJSON(chatResponse{Reply: reply}); err != nil {
			log.Printf("websocket session=%s: write: %v", sessionID, err)
			return
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}
