package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"linkly/internal/domain"
	"linkly/internal/middleware"
	"linkly/internal/service"
	"linkly/internal/validation"
)

const shortIDParam = "short_id"

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errCreateFailed      = map[string]string{"error": "failed to create short url"}
	errLinkNotFound      = map[string]string{"error": "url not found"}
	errRedirectFailed    = map[string]string{"error": "something went wrong"}
	errAnalyticsNotFound = map[string]string{"error": "analytics data not found for this short url"}
	errAnalyticsFailed   = map[string]string{"error": "failed to get analytics"}
	errDeleteFailed      = map[string]string{"error": "something went wrong"}
	errQRFailed          = map[string]string{"error": "qr generation failed"}
	errValidationFailed  = map[string]string{"error": "validation failed"}
	respErased           = domain.DeleteResponse{Message: "Url data successfully erased"}
	respHealthOK         = map[string]string{"status": "ok"}
)

var validationBodies = []struct {
	err  error
	body map[string]string
}{
	{validation.ErrEmptyURL, map[string]string{"error": "original_url is required"}},
	{validation.ErrInvalidURLFormat, map[string]string{"error": "invalid url format"}},
	{validation.ErrUnsafeProtocol, map[string]string{"error": "url protocol not allowed"}},
	{validation.ErrURLTooLong, map[string]string{"error": "url exceeds maximum length"}},
	{validation.ErrPrivateIPNotAllowed, map[string]string{"error": "private ip addresses not allowed"}},
	{validation.ErrInvalidExpiry, map[string]string{"error": "expiry must be a positive number of seconds"}},
}

type Handler struct {
	links     LinkService
	resolver  Resolver
	eraser    Eraser
	tracker   ClickTracker
	validator URLValidator
	qr        QRFetcher
	recorder  BusinessRecorder
	logger    *slog.Logger
}

func New(
	links LinkService,
	resolver Resolver,
	eraser Eraser,
	tracker ClickTracker,
	validator URLValidator,
	qr QRFetcher,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		links:     links,
		resolver:  resolver,
		eraser:    eraser,
		tracker:   tracker,
		validator: validator,
		qr:        qr,
		recorder:  recorder,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/v1/health", h.Health)
	e.POST("/shorten", h.Shorten)
	e.GET("/analytics/:short_id", h.Analytics)
	e.GET("/delete/:short_id", h.Delete)
	e.GET("/create-qr-code/:short_id", h.QRCode)
	e.GET("/:short_id", h.Redirect)
	e.DELETE("/:short_id", h.Delete)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Shorten(c echo.Context) error {
	var req domain.ShortenRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Debug("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateURL(req.OriginalURL); err != nil {
		return validationError(c, err)
	}
	expiry, err := h.validator.ValidateExpiry(req.Expiry)
	if err != nil {
		return validationError(c, err)
	}

	link, err := h.links.Create(c.Request().Context(), req.OriginalURL, middleware.OwnerFrom(c), expiry)
	if err != nil {
		h.logger.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, domain.ShortenResponse{
		ShortURL:    link.ShortURL,
		OriginalURL: link.OriginalURL,
		Expiry:      req.Expiry,
	})
}

// Redirect answers before the click is recorded; recording happens on the
// tracker pool.
func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param(shortIDParam)
	ctx := c.Request().Context()

	destination, err := h.resolver.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.recorder.RecordBusiness("link_not_found", 1, nil)
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to resolve short code",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errRedirectFailed)
	}

	h.tracker.Submit(domain.Click{
		ShortCode:   code,
		ClientIP:    c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
		Attribution: attributionFrom(c),
		ReceivedAt:  time.Now().UTC(),
	})
	h.recorder.RecordBusiness("redirect", 1, map[string]string{
		"referrer": extractDomain(c.Request().Referer()),
	})

	return c.Redirect(http.StatusFound, destination)
}

func (h *Handler) Analytics(c echo.Context) error {
	code := c.Param(shortIDParam)
	a := attributionFrom(c)
	filters := domain.Filters{Source: a.Source, Medium: a.Medium, Campaign: a.Campaign}

	agg, err := h.resolver.Analytics(c.Request().Context(), code, filters)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errAnalyticsNotFound)
		}
		h.logger.Error("failed to get analytics",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
	}

	return c.JSON(http.StatusOK, agg)
}

func (h *Handler) Delete(c echo.Context) error {
	code := c.Param(shortIDParam)

	if err := h.eraser.Erase(c.Request().Context(), code); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to delete link",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeleteFailed)
	}

	return c.JSON(http.StatusOK, respErased)
}

// QRCode proxies a QR image encoding the link's public short URL.
func (h *Handler) QRCode(c echo.Context) error {
	code := c.Param(shortIDParam)
	ctx := c.Request().Context()

	link, err := h.links.Get(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to load link", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errQRFailed)
	}

	img, contentType, err := h.qr.Fetch(ctx, link.ShortURL)
	if err != nil {
		h.logger.Warn("qr upstream failed", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, errQRFailed)
	}

	return c.Blob(http.StatusOK, contentType, img)
}

// attributionFrom reads the utm_* query parameters. Empty values count as absent.
func attributionFrom(c echo.Context) domain.Attribution {
	return domain.Attribution{
		Source:   queryPtr(c, "utm_source"),
		Medium:   queryPtr(c, "utm_medium"),
		Campaign: queryPtr(c, "utm_campaign"),
	}
}

func queryPtr(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	return &v
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func validationError(c echo.Context, err error) error {
	for _, v := range validationBodies {
		if errors.Is(err, v.err) {
			return c.JSON(http.StatusBadRequest, v.body)
		}
	}
	return c.JSON(http.StatusBadRequest, errValidationFailed)
}
