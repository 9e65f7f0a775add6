package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"penguinadmin/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/"

// requestValidator checks /api requests against the OpenAPI document before
// they reach a handler. Requests the document does not describe (unknown path
// or method) pass through so echo answers them as usual. Authentication stays with
// requireSession; the validator only checks shape.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	doc.Servers = nil
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			if err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

// validationMessage keeps the reason and the offending field, dropping the
// schema dump kin-openapi appends.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "Invalid request"
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" && reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		}
		if field != "" {
			return field + ": " + schemaErr.Reason
		}
		return schemaErr.Reason
	}

	if reqErr.Parameter != nil {
		return reqErr.Parameter.Name + ": " + reqErr.Reason
	}
	if reqErr.Reason != "" {
		return reqErr.Reason
	}
	return "Invalid request"
}
