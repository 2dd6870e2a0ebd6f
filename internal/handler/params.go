package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathOptions binds a required simple-style path parameter.
var pathOptions = runtime.BindStyledParameterOptions{
	ParamLocation: runtime.ParamLocationPath,
	Explode:       false,
	Required:      true,
}

// pathUUID binds the named path parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, pathOptions)
	return id, err
}

// pathInt binds the named path parameter as an integer.
func pathInt(r *http.Request, name string) (int, error) {
	var n int
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &n, pathOptions)
	return n, err
}

// queryInt binds an optional form-style integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	var n *int
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &n)
	return n, err
}

// queryString binds an optional form-style string query parameter.
func queryString(r *http.Request, name string) (*string, error) {
	var s *string
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &s)
	return s, err
}
