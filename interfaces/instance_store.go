package interfaces

import (
	"context"

	"distsn/domain"
)

// InstanceStore holds the descriptors behind the instance API.
// A descriptor is keyed by its domain and disappears when its TTL runs out.
//
//go:generate moq -stub -out mock/instance_store.go -pkg mock . InstanceStore
type InstanceStore interface {
	// SaveInstance stores instance under instance.Domain, replacing any earlier record and restarting its TTL (ms).
	// Fails with internal_server_error when the record cannot be encoded or written.
	SaveInstance(ctx context.Context, instance domain.InstanceDescriptor, ttlMs int) error

	// ListInstances returns every live descriptor, in no particular order.
	// Records that do not decode are skipped. When nothing is left the error is entity_not_found;
	// a failing store is internal_server_error.
	ListInstances(ctx context.Context) ([]domain.InstanceDescriptor, error)

	// DeleteInstance removes the descriptor of instanceDomain. An unknown domain is not an error.
	DeleteInstance(ctx context.Context, instanceDomain string) error
}
