// Package handlers contains http handlers for distsn.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/distsn.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/distsn.openapi.yaml
package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"distsn/adapters"
	"distsn/domain"
	"distsn/helpers"
	"distsn/interfaces"
	"distsn/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	store      interfaces.InstanceStore
	source     interfaces.InstanceSource
	baseLogger log.Logger
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer. store backs the instance API; source is what each page load reads.
func NewHTTPServer(store interfaces.InstanceStore, source interfaces.InstanceSource, logger log.Logger) *HTTPServer {
	logger = helpers.NilPanic(logger, "handlers.http.go: logger is required")
	return &HTTPServer{
		store:      helpers.NilPanic(store, "handlers.http.go: instance store is required"),
		source:     helpers.NilPanic(source, "handlers.http.go: instance source is required"),
		baseLogger: logger,
		logger:     log.WithPrefix(logger, "component", "HTTPServer"),
	}
}

// ShowInstances renders the list page. Every call is one page load: a fresh placeholder, one instance request.
// Fetch and parse failures are logged and leave the placeholder empty; the page is still served.
func (h *HTTPServer) ShowInstances(ectx echo.Context) error {
	placeholder := adapters.NewElement(domain.PlaceholderID)
	renderer := service.NewInstanceListRenderer(h.source, placeholder, h.baseLogger)
	if err := renderer.Initialize(ectx.Request().Context()); err != nil {
		level.Error(h.logger).Log("msg", "Instance list not rendered", "err", err)
	}

	return ectx.Render(http.StatusOK, instancesTemplate, instancesPageData{
		PlaceholderID: placeholder.ID(),
		PreviewTarget: domain.PreviewTarget,
		Placeholder:   template.HTML(placeholder.InnerHTML()),
	})
}

// ShowInstancesPage serves the list page under /pleroma-instances.html.
func (h *HTTPServer) ShowInstancesPage(ectx echo.Context) error {
	return h.ShowInstances(ectx)
}

// PreviewInstance renders the preview page; the whole raw query string is the domain.
func (h *HTTPServer) PreviewInstance(ectx echo.Context) error {
	return ectx.Render(http.StatusOK, previewTemplate, previewPageData{
		Domain: ectx.Request().URL.RawQuery,
	})
}

// MissingThumbnail serves the fallback thumbnail.
func (h *HTTPServer) MissingThumbnail(ectx echo.Context) error {
	return ectx.Blob(http.StatusOK, "image/svg+xml", missingThumbnailSVG)
}

// GetInstances reads all descriptors from the store, fastest first. An empty store is 200 with [].
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	instances, err := h.store.ListInstances(ctx)
	if err != nil && !service.IsEntityNotFoundError(err) {
		return fmt.Errorf("getInstances failed to list instances, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toInstancesResponse(instances))
}

// RegisterInstance writes the descriptor to the store with the requested TTL.
// Returns 200 on success, 400 on parse/validation error, 500 on store error.
func (h *HTTPServer) RegisterInstance(ectx echo.Context) error {
	var req RegisterInstanceJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	instance, ttlMs, err := fromRegisterRequest(req)
	if err != nil {
		return fmt.Errorf("registerInstance failed to convert request to instance, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.store.SaveInstance(ctx, instance, ttlMs); err != nil {
		return fmt.Errorf("registerInstance failed to save instance, err: %w", err)
	}

	level.Info(h.logger).Log("msg", "Instance registered", "domain", instance.Domain, "ttl_ms", ttlMs)
	return ectx.NoContent(http.StatusOK)
}

// UnregisterInstance removes the descriptor from the store.
func (h *HTTPServer) UnregisterInstance(ectx echo.Context, instanceDomain string) error {
	ctx := ectx.Request().Context()
	if err := h.store.DeleteInstance(ctx, instanceDomain); err != nil {
		return fmt.Errorf("unregisterInstance failed to delete instance, err: %w", err)
	}

	level.Info(h.logger).Log("msg", "Instance unregistered", "domain", instanceDomain)
	return ectx.NoContent(http.StatusOK)
}
