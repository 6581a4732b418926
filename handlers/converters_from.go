package handlers

import (
	"distsn/domain"
	"distsn/service"
)

// fromRegisterRequest converts RegisterRequest to domain.InstanceDescriptor and its TTL.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest) (domain.InstanceDescriptor, int, error) {
	if req.Domain == "" {
		return domain.InstanceDescriptor{}, 0, service.NewBadParameterError("domain is required", nil)
	}
	if err := domain.ValidateDomain(req.Domain); err != nil {
		return domain.InstanceDescriptor{}, 0, service.NewBadParameterError("domain must be a host name", err)
	}
	thumbnail := service.Value(req.Thumbnail)
	if err := domain.ValidateThumbnail(thumbnail); err != nil {
		return domain.InstanceDescriptor{}, 0, service.NewBadParameterError("thumbnail must be an http(s) or relative URL", err)
	}
	if req.TtlMs <= 0 {
		return domain.InstanceDescriptor{}, 0, service.NewBadParameterError("ttl_ms is required", nil)
	}

	return domain.InstanceDescriptor{
		Domain:    req.Domain,
		Title:     service.Value(req.Title),
		Thumbnail: thumbnail,
	}, req.TtlMs, nil
}
