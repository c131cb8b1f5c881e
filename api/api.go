// Package api holds the OpenAPI contract of the HTTP interface.
package api

import _ "embed"

// OpenAPI is the contract served at /swagger and used to validate requests.
//
//go:embed openapi.yml
var OpenAPI []byte
