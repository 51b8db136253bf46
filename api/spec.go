package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document embedded in the binary.
// The document is loaded once and shared, callers must not mutate it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}

		err = doc.Validate(context.Background())
		if err != nil {
			swaggerErr = fmt.Errorf("invalid OpenAPI document: %w", err)
			return
		}

		swagger = doc
	})

	return swagger, swaggerErr
}
