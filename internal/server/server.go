package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"discord-speakable/internal/adapters/guild"
	"discord-speakable/internal/pkg/config"
	"discord-speakable/internal/ports"
)

// GuildDirectory выдает контексты разрешения и сведения о загруженных снимках серверов.
type GuildDirectory interface {
	ports.GuildProvider
	Snapshot(guildID string) (*guild.Snapshot, error)
}

// Server представляет HTTP-сервер
type Server struct {
	HTTPServer *http.Server
	cfg        *config.Config
	renderer   ports.SpeechRenderer
	guilds     GuildDirectory
	log        *slog.Logger
}

type speakRequest struct {
	Content string `json:"content"`
	GuildID string `json:"guild_id"`
}

type speakResponse struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

type guildResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Members  int    `json:"members"`
	Channels int    `json:"channels"`
	Roles    int    `json:"roles"`
}

// New создает новый экземпляр Server
func New(cfg *config.Config, renderer ports.SpeechRenderer, guilds GuildDirectory) (*Server, error) {
	if renderer == nil {
		return nil, errors.New("speech renderer is required")
	}

	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		guilds:   guilds,
		log:      slog.Default().With("component", "http"),
	}

	chiRouter := chi.NewRouter()

	// Промежуточное ПО
	chiRouter.Use(middleware.Logger)
	chiRouter.Use(middleware.Recoverer)

	// Конечная точка для проверки работоспособности
	chiRouter.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Маршруты API
	chiRouter.Route("/api/v1", func(r chi.Router) {
		r.Post("/speak", s.handleSpeak)
		r.Get("/guilds/{guildID}", s.handleGuild)
	})

	s.HTTPServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      chiRouter,
		ReadTimeout:  orDefault(cfg.Server.ReadTimeout, config.DefaultReadTimeout),
		WriteTimeout: orDefault(cfg.Server.WriteTimeout, config.DefaultWriteTimeout),
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// handleSpeak рендерит содержимое сообщения в текст для озвучивания
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Server.MaxContentBytes
	if limit <= 0 {
		limit = config.DefaultMaxContentBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Тело запроса слишком большое", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Не удалось декодировать тело запроса", http.StatusBadRequest)
		return
	}

	// Неизвестный или пустой guild_id рендерится без контекста сервера
	var g ports.Guild
	if req.GuildID != "" && s.guilds != nil {
		if found, ok := s.guilds.Guild(req.GuildID); ok {
			g = found
		}
	}

	requestID := uuid.NewString()
	text := s.renderer.Speak(req.Content, g)
	s.log.Info("Speech rendered", "request_id", requestID, "guild_id", req.GuildID,
		"resolved", g != nil, "input_length", len(req.Content), "output_length", len(text))

	w.Header().Set("X-Request-Id", requestID)
	writeJSON(w, http.StatusOK, speakResponse{RequestID: requestID, Text: text})
}

// handleGuild возвращает сведения о загруженном снимке сервера
func (s *Server) handleGuild(w http.ResponseWriter, r *http.Request) {
	guildID := chi.URLParam(r, "guildID")
	if s.guilds == nil {
		http.Error(w, "Сервер не найден", http.StatusNotFound)
		return
	}

	snapshot, err := s.guilds.Snapshot(guildID)
	if err != nil {
		if errors.Is(err, guild.ErrUnknownGuild) {
			http.Error(w, "Сервер не найден", http.StatusNotFound)
			return
		}
		s.log.Error("Failed to get guild snapshot", "guild_id", guildID, "error", err)
		http.Error(w, "Внутренняя ошибка", http.StatusInternalServerError)
		return
	}

	members, channels, roles := snapshot.Stats()
	writeJSON(w, http.StatusOK, guildResponse{
		ID:       snapshot.ID(),
		Name:     snapshot.Name(),
		Members:  members,
		Channels: channels,
		Roles:    roles,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}

// ListenAndServe запускает HTTP-сервер
func (s *Server) ListenAndServe() error {
	return s.HTTPServer.ListenAndServe()
}

// Shutdown корректно завершает работу HTTP-сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Завершение работы HTTP-сервера")
	return s.HTTPServer.Shutdown(ctx)
}
