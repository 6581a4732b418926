package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"distsn/domain"
	"distsn/helpers"
	"distsn/interfaces"
)

// InstancesHTTP creates an interfaces.InstanceSource that reads the instance list over HTTP:
// GET baseURL + domain.InstancesAPIPath. Panics on empty baseURL or nil client.
//
// Parameters: baseURL: base URL of the instance endpoint (e.g. http://localhost:8080), no trailing slash;
// client: HTTP client. No client timeout is expected: the request lives as long as ctx does.
//
// Constructed in cmd/main; handlers.HTTPServer fetches through it on every page load.
func InstancesHTTP(baseURL string, client *http.Client) interfaces.InstanceSource {
	return &instancesHTTP{
		url:    helpers.StrPanic(baseURL, "adapters.instances.go: baseURL is required") + domain.InstancesAPIPath,
		client: helpers.NilPanic(client, "adapters.instances.go: http client is required"),
	}
}

// instancesHTTP implements interfaces.InstanceSource.
type instancesHTTP struct {
	url    string
	client *http.Client
}

// Fetch performs GET on the instance endpoint with no headers, query or body.
//
// Returns: (status, body, nil) for every response regardless of status; (0, nil, error) when the request
// cannot be built, the transport fails (including ctx cancellation) or the body cannot be read.
func (s *instancesHTTP) Fetch(ctx context.Context) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("instances request build failed, err: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("instances request failed, err: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("instances response read failed (status %d), err: %w", resp.StatusCode, err)
	}
	return resp.StatusCode, body, nil
}
