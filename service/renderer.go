package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"distsn/domain"
	"distsn/helpers"
	"distsn/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// InstanceListRenderer fetches the instance list once per page load and renders it
// into the placeholder it owns.
type InstanceListRenderer struct {
	source      interfaces.InstanceSource
	placeholder interfaces.Placeholder
	logger      log.Logger
}

// NewInstanceListRenderer creates a renderer bound to one placeholder. Panics on nil dependencies.
func NewInstanceListRenderer(source interfaces.InstanceSource, placeholder interfaces.Placeholder, logger log.Logger) *InstanceListRenderer {
	return &InstanceListRenderer{
		source:      helpers.NilPanic(source, "service.renderer.go: instance source is required"),
		placeholder: helpers.NilPanic(placeholder, "service.renderer.go: placeholder is required"),
		logger:      log.WithPrefix(helpers.NilPanic(logger, "service.renderer.go: logger is required"), "component", "InstanceListRenderer"),
	}
}

var (
	errNullInstances = errors.New("instance list is null")
	errNullInstance  = errors.New("instance is null")
)

// instanceDescriptorJSON is one element of the instance endpoint's JSON array.
type instanceDescriptorJSON struct {
	Domain    string `json:"domain"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// Initialize issues the single instance request of a page load and hands the response to OnResponse.
// Returns the transport error, or whatever OnResponse returns.
func (r *InstanceListRenderer) Initialize(ctx context.Context) error {
	status, body, err := r.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("initialize failed to fetch instances, err: %w", err)
	}
	return r.OnResponse(status, body)
}

// OnResponse renders body when status is 200 and does nothing otherwise.
// A body that is not a JSON array of objects is returned as an error and nothing is rendered.
func (r *InstanceListRenderer) OnResponse(status int, body []byte) error {
	if status != http.StatusOK {
		return nil
	}

	var raw []*instanceDescriptorJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("onResponse failed to parse instances, err: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("onResponse failed to parse instances, err: %w", errNullInstances)
	}

	instances := make([]domain.InstanceDescriptor, 0, len(raw))
	for i, d := range raw {
		if d == nil {
			return fmt.Errorf("onResponse failed to parse instances, err: instance #%d: %w", i, errNullInstance)
		}
		instances = append(instances, domain.InstanceDescriptor{
			Domain:    d.Domain,
			Title:     d.Title,
			Thumbnail: d.Thumbnail,
		})
	}
	r.Render(instances)
	return nil
}

// Render replaces the placeholder content with one paragraph per instance, in input order.
func (r *InstanceListRenderer) Render(instances []domain.InstanceDescriptor) {
	var sb strings.Builder
	for _, instance := range instances {
		writeInstance(&sb, instance)
	}
	r.placeholder.SetInnerHTML(sb.String())

	level.Debug(r.logger).Log("msg", "Rendered instances", "placeholder", r.placeholder.ID(), "count", len(instances))
}

// writeInstance writes the thumbnail link and the label link of one instance.
// domain goes into the href and the fallback label unescaped.
func writeInstance(sb *strings.Builder, instance domain.InstanceDescriptor) {
	thumbnail := domain.MissingThumbnail
	if instance.HasThumbnail() {
		thumbnail = instance.Thumbnail
	}

	label := instance.Domain
	if instance.HasTitle() {
		label = EscapeHTML(instance.Title)
	}

	anchor := `<a href="` + domain.PreviewPage + `?` + instance.Domain + `" target="` + domain.PreviewTarget + `">`

	sb.WriteString(`<p>`)
	sb.WriteString(anchor)
	sb.WriteString(`<img class="avatar" src="` + thumbnail + `">`)
	sb.WriteString(`</a>`)
	sb.WriteString(anchor)
	sb.WriteString(label)
	sb.WriteString(`</a>`)
	sb.WriteString(`</p>`)
}

// EscapeHTML replaces every "&", then every "<", then every ">". Quotes are left as they are.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
