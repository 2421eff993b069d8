package api

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
	"github.com/insightdelivered/bank-notification-parser/internal/parser"
)

// Version is reported by the health endpoint and the CLI.
const Version = "1.0.0"

// MaxBatchSize caps the number of notifications in one batch request.
const MaxBatchSize = 100

const requestIDKey = "requestid"

// ParseRequest is one notification submitted to /api/parse.
type ParseRequest struct {
	Message     string `json:"message"`
	PackageName string `json:"packageName,omitempty"`
	SenderCode  string `json:"senderCode,omitempty"`
}

// ParseResponse is the JSON response from the /api/parse endpoint.
type ParseResponse struct {
	Success     bool                `json:"success"`
	Error       string              `json:"error,omitempty"`
	Matched     bool                `json:"matched"`
	Bank        string              `json:"bank,omitempty"`
	BankType    models.BankType     `json:"bankType,omitempty"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Duplicate   bool                `json:"duplicate"`
	RequestID   string              `json:"requestId,omitempty"`
}

// BankInfo describes one registered bank for the /api/banks endpoint.
type BankInfo struct {
	Name     string          `json:"name"`
	Type     models.BankType `json:"type"`
	Packages []string        `json:"packages"`
	Senders  []string        `json:"senders"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Registry      *parser.Registry
	Cache         *cache.Cache
	Log           *log.Logger
	MaxMessageLen int
}

// NewHandler builds a handler whose duplicate cache remembers notifications for ttl.
func NewHandler(reg *parser.Registry, ttl time.Duration, maxMessageLen int, logger *log.Logger) *Handler {
	return &Handler{
		Registry:      reg,
		Cache:         cache.New(ttl, 2*ttl),
		Log:           logger.WithPrefix("api"),
		MaxMessageLen: maxMessageLen,
	}
}

// NewApp returns a fiber app with the middleware and routes of h.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "bank-notification-parser",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(h.requestLogger)

	h.RegisterRoutes(app)
	return app
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Get("/api/banks", h.HandleBanks)
	app.Post("/api/parse", h.HandleParse)
	app.Post("/api/parse/batch", h.HandleParseBatch)
}

// requestLogger tags every request with an ID and logs it once it completes.
func (h *Handler) requestLogger(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Locals(requestIDKey, id)
	c.Set(fiber.HeaderXRequestID, id)

	start := time.Now()
	err := c.Next()
	h.Log.Debug("request",
		"id", id,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return uuid.NewString()
}

// HandleHealth reports that the service is up.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"engine":  "fiber",
	})
}

// HandleBanks lists the registered banks in the order they are tried.
func (h *Handler) HandleBanks(c *fiber.Ctx) error {
	parsers := h.Registry.Parsers()
	banks := make([]BankInfo, 0, len(parsers))
	for _, p := range parsers {
		banks = append(banks, BankInfo{
			Name:     p.BankName(),
			Type:     p.BankType(),
			Packages: nonNil(p.PackageNames()),
			Senders:  nonNil(p.SenderCodes()),
		})
	}
	return c.JSON(banks)
}

// HandleParse parses a single notification.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	resp, status := h.parse(req, requestID(c))
	return c.Status(status).JSON(resp)
}

// HandleParseBatch parses up to MaxBatchSize notifications. Invalid entries
// get an error response of their own and do not fail the batch.
func (h *Handler) HandleParseBatch(c *fiber.Ctx) error {
	var reqs []ParseRequest
	if err := c.BodyParser(&reqs); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if len(reqs) > MaxBatchSize {
		return writeError(c, fiber.StatusBadRequest, "Too many notifications in one batch.")
	}

	id := requestID(c)
	out := make([]ParseResponse, len(reqs))
	for i, req := range reqs {
		out[i], _ = h.parse(req, id)
	}
	return c.JSON(out)
}

// parse validates req and runs it through the registry. Notifications seen
// within the cache TTL are answered from the cache and flagged as duplicates.
func (h *Handler) parse(req ParseRequest, id string) (ParseResponse, int) {
	if strings.TrimSpace(req.Message) == "" {
		return ParseResponse{Error: "message is required", RequestID: id}, fiber.StatusBadRequest
	}
	if h.MaxMessageLen > 0 && len(req.Message) > h.MaxMessageLen {
		return ParseResponse{Error: "message is too long", RequestID: id}, fiber.StatusBadRequest
	}

	key := cacheKey(req)
	if cached, ok := h.Cache.Get(key); ok {
		resp := cached.(ParseResponse)
		resp.Duplicate = true
		resp.RequestID = id
		h.Log.Info("duplicate notification", "id", id, "bank", resp.Bank)
		return resp, fiber.StatusOK
	}

	resp := ParseResponse{Success: true, RequestID: id}
	if res, ok := h.Registry.ParseMessage(req.Message, req.PackageName, req.SenderCode); ok {
		tx := res.Transaction
		resp.Matched = true
		resp.Bank = res.Parser.BankName()
		resp.BankType = res.Parser.BankType()
		resp.Transaction = &tx
		h.Log.Info("parsed notification", "id", id, "bank", resp.Bank, "amount", tx.Amount.String())
	} else {
		h.Log.Debug("no parser matched", "id", id, "package", req.PackageName, "sender", req.SenderCode)
	}

	h.Cache.Set(key, resp, cache.DefaultExpiration)
	return resp, fiber.StatusOK
}

func cacheKey(req ParseRequest) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(req.PackageName)),
		strings.ToLower(strings.TrimSpace(req.SenderCode)),
		req.Message,
	}, "\x00")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success:   false,
		Error:     msg,
		RequestID: requestID(c),
	})
}
