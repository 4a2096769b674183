// Package http exposes the content, auth and upload APIs over Fiber.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/usecase"
)

// sessionCookie carries the admin session token, HTTP-only and scoped to
// the whole site.
const sessionCookie = "admin_session"

// allowedUploadTypes mirrors the hosted bucket's MIME allowlist. Requests
// without a declared content type are let through; the stored bytes are
// never interpreted server-side.
var allowedUploadTypes = map[string]bool{
	"image/png":          true,
	"image/jpeg":         true,
	"image/gif":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type Handler struct {
	content   *usecase.ContentService
	sessions  *usecase.SessionManager
	uploader  *usecase.Uploader
	maxUpload int64
	log       zerolog.Logger
}

func NewHandler(content *usecase.ContentService, sessions *usecase.SessionManager, uploader *usecase.Uploader, maxUpload int64, log zerolog.Logger) *Handler {
	return &Handler{
		content:   content,
		sessions:  sessions,
		uploader:  uploader,
		maxUpload: maxUpload,
		log:       log,
	}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
	api.Get("/session", h.Session)
	api.Get("/content", h.GetContent)
	api.Post("/content", h.RequireSession, h.SaveContent)
	api.Post("/upload", h.RequireSession, h.Upload)
	app.Get("/healthz", h.Health)
}

// RequireSession guards write endpoints. Any request bearing a valid,
// unexpired session cookie is authenticated for the duration of that
// request; there is no recheck beyond expiry.
func (h *Handler) RequireSession(c *fiber.Ctx) error {
	if !h.sessions.Validate(c.Cookies(sessionCookie)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.Next()
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	token, expires, err := h.sessions.Login(req.Password)
	if err != nil {
		h.log.Warn().Str("ip", c.IP()).Msg("failed admin login attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid password"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.Info().Str("ip", c.IP()).Msg("admin login")
	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the cookie. The token itself stays valid server-side until
// its natural expiry; there is no revocation list.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Session(c *fiber.Ctx) error {
	if h.sessions.Validate(c.Cookies(sessionCookie)) {
		return c.JSON(fiber.Map{"authenticated": true})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
}

// GetContent serves the full snapshot. The no-store header keeps the
// public renderer's save-then-preview flow consistent.
func (h *Handler) GetContent(c *fiber.Ctx) error {
	snap, err := h.content.FetchSnapshot(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("snapshot fetch failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load data"})
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(snap)
}

func (h *Handler) SaveContent(c *fiber.Ctx) error {
	var req struct {
		Section string          `json:"section"`
		Data    json.RawMessage `json:"data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Section == "" || len(req.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing section or data"})
	}

	if err := h.content.SaveSection(c.Context(), req.Section, req.Data); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		default:
			h.log.Error().Err(err).Str("section", req.Section).Msg("section save failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File too large"})
	}
	if ct := fh.Header.Get(fiber.HeaderContentType); ct != "" && !allowedUploadTypes[ct] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File type not allowed"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	url, err := h.uploader.Store(c.Context(), fh.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrNoFile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
		}
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("upload failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"url": url})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.content.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
