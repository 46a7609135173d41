package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/text/language"

	"jeopardy/internal/app"
	"jeopardy/internal/i18n"
)

// Handler upgrades console connections and attaches them to the controller
type Handler struct {
	controller *app.Controller
	lang       language.Tag
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewHandler creates a new WebSocket handler. lang is used for error messages
// when the console sends no Accept-Language or lang query parameter.
func NewHandler(controller *app.Controller, lang language.Tag, logger *slog.Logger) *Handler {
	return &Handler{
		controller: controller,
		lang:       lang,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// ServeHTTP handles WebSocket upgrade requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lang := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), h.lang)
	if tag, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		lang = tag
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(conn, h.controller, uuid.NewString(), lang, h.logger)
	h.controller.RegisterClient(client)

	h.logger.Info("console connected", "clientID", client.ID(), "lang", lang)

	client.sendConnected()
	client.Run()

	h.logger.Info("console disconnected", "clientID", client.ID())
}
