// Package api embeds the OpenAPI document of the distsn HTTP API.
package api

import _ "embed"

// OpenAPISpec is the OpenAPI 3 document the registration API is validated against.
//
//go:embed distsn.openapi.yaml
var OpenAPISpec []byte
