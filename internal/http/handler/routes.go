package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pdfsettings/internal/model"
	"pdfsettings/internal/service"
)

const maxPresignExpiry = 7 * 24 * time.Hour

type pinger interface {
	PingContext(ctx context.Context) error
}

// FilterRequest is the body of the filter endpoint.
type FilterRequest struct {
	Components []string `json:"components" example:"header,summary,attachment-list"`
}

// FilterResponse lists the components that remain after exclusion, in request order.
type FilterResponse struct {
	Components []string `json:"components"`
}

// SnapshotURLResponse carries a presigned snapshot download URL.
type SnapshotURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.SettingsService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/v1")
	v1.Get("/pdf-settings", ListSettings(svc))

	apps := v1.Group("/apps/:org/:app/pdf-settings")
	apps.Get("", GetSettings(svc))
	apps.Put("", PutSettings(svc))
	apps.Delete("", DeleteSettings(svc))
	apps.Post("/filter", FilterComponents(svc))
	apps.Get("/snapshot", GetSnapshot(svc))
}

func appIDFromParams(c *fiber.Ctx) (string, error) {
	return model.NewAppID(c.Params("org"), c.Params("app"))
}

func invalidAppID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_APP_ID", "invalid org or app name")
}

func notFound(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "settings not found")
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Checks database connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListSettings godoc
// @Summary List PDF settings
// @Tags pdf-settings
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} service.SettingsListResult
// @Failure 400 {object} errorPayload
// @Router /v1/pdf-settings [get]
func ListSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// GetSettings godoc
// @Summary Get the PDF settings of an app
// @Tags pdf-settings
// @Produce json
// @Param org path string true "Organisation"
// @Param app path string true "App name"
// @Success 200 {object} model.AppSettings
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /v1/apps/{org}/{app}/pdf-settings [get]
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appID, err := appIDFromParams(c)
		if err != nil {
			return invalidAppID(c)
		}
		res, err := svc.Get(c.UserContext(), appID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return notFound(c)
			}
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// PutSettings godoc
// @Summary Replace the PDF settings of an app
// @Description The exclusion list is stored as given: order and duplicates are kept, null and [] stay distinct.
// @Tags pdf-settings
// @Accept json
// @Produce json
// @Param org path string true "Organisation"
// @Param app path string true "App name"
// @Param settings body model.ComponentSettings true "Component settings"
// @Success 200 {object} model.AppSettings
// @Failure 400 {object} errorPayload
// @Router /v1/apps/{org}/{app}/pdf-settings [put]
func PutSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appID, err := appIDFromParams(c)
		if err != nil {
			return invalidAppID(c)
		}

		var settings model.ComponentSettings
		if err := json.Unmarshal(c.Body(), &settings); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be a ComponentSettings JSON object")
		}

		res, err := svc.Put(c.UserContext(), appID, settings)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteSettings godoc
// @Summary Delete the PDF settings of an app
// @Tags pdf-settings
// @Param org path string true "Organisation"
// @Param app path string true "App name"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /v1/apps/{org}/{app}/pdf-settings [delete]
func DeleteSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appID, err := appIDFromParams(c)
		if err != nil {
			return invalidAppID(c)
		}
		if err := svc.Delete(c.UserContext(), appID); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return notFound(c)
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// FilterComponents godoc
// @Summary Apply the exclusion list to component IDs
// @Description Returns the given components minus the excluded ones, preserving order. Apps without settings exclude nothing.
// @Tags pdf-settings
// @Accept json
// @Produce json
// @Param org path string true "Organisation"
// @Param app path string true "App name"
// @Param request body FilterRequest true "Component IDs"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} errorPayload
// @Router /v1/apps/{org}/{app}/pdf-settings/filter [post]
func FilterComponents(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appID, err := appIDFromParams(c)
		if err != nil {
			return invalidAppID(c)
		}

		var req FilterRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be a JSON object with a components array")
		}

		kept, err := svc.Filter(c.UserContext(), appID, req.Components)
		if err != nil {
			return internalError(c, err)
		}
		if kept == nil {
			kept = []string{}
		}
		return c.JSON(FilterResponse{Components: kept})
	}
}

// GetSnapshot godoc
// @Summary Download the published settings snapshot
// @Description Streams the JSON object read by the PDF generator, or returns a presigned URL when presign is set.
// @Tags pdf-settings
// @Produce json
// @Param org path string true "Organisation"
// @Param app path string true "App name"
// @Param presign query string false "Presigned URL lifetime, e.g. 15m (max 168h)"
// @Success 200 {object} model.ComponentSettings
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /v1/apps/{org}/{app}/pdf-settings/snapshot [get]
func GetSnapshot(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appID, err := appIDFromParams(c)
		if err != nil {
			return invalidAppID(c)
		}

		if raw := c.Query("presign"); raw != "" {
			expiry, err := time.ParseDuration(raw)
			if err != nil || expiry < time.Second || expiry > maxPresignExpiry {
				return writeError(c, fiber.StatusBadRequest, "INVALID_EXPIRY", "presign must be a duration between 1s and 168h")
			}
			u, err := svc.SnapshotURL(c.UserContext(), appID, expiry)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					return notFound(c)
				}
				return internalError(c, err)
			}
			return c.JSON(SnapshotURLResponse{URL: u, ExpiresAt: time.Now().UTC().Add(expiry)})
		}

		rc, info, err := svc.Snapshot(c.UserContext(), appID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return notFound(c)
			}
			return internalError(c, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEApplicationJSON
		}
		c.Set(fiber.HeaderContentType, ct)
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, info.ETag)
		}
		size := int(info.Size)
		if size <= 0 {
			size = -1
		}
		return c.SendStream(rc, size)
	}
}
