package interfaces

import "context"

// InstanceSource issues the single request for the instance list made on each page load.
//
// Implemented by adapters.InstancesHTTP. Called from service.InstanceListRenderer.Initialize.
//
//go:generate moq -stub -out mock/instance_source.go -pkg mock . InstanceSource
type InstanceSource interface {
	// Fetch performs one GET to the instance endpoint.
	// Returns: (status, body, nil) for any HTTP response, whatever its status; (0, nil, error) on request or transport failure.
	// The status is not interpreted here: the renderer decides what a non-200 means.
	Fetch(ctx context.Context) (int, []byte, error)
}
