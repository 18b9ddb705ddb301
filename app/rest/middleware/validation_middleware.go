package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	apperrors "user-api/app/utils/errors"
	validatorutil "user-api/app/utils/validator"
)

// validatedBodyKey is the echo context key for the validated request body
const validatedBodyKey = "validated_body"

// Schema declares the validation rules for a route. Body is a factory for
// the request struct (validated via its `validate` tags); Params and Query
// map parameter names to validation tags.
type Schema struct {
	Body   func() interface{}
	Params map[string]string
	Query  map[string]string
}

// Validate returns a middleware that checks the request body, path params
// and query params against the schema in a single pass, aggregating every
// failure. On failure the request short-circuits with a 400 envelope
// carrying the field-to-messages map; on success downstream handlers may
// assume every declared field is present and well-typed.
func Validate(v *validatorutil.Validator, schema Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			agg := validatorutil.EmptyValidationError()

			var body interface{}
			if schema.Body != nil {
				body = schema.Body()
				if err := c.Bind(body); err != nil {
					agg.Merge("body", []string{"body must be valid JSON"})
				} else if err := v.Validate(body); err != nil {
					var vErr *validatorutil.ValidationError
					if !errors.As(err, &vErr) {
						return apperrors.NewInternalError(err)
					}
					for field, messages := range vErr.Errors {
						agg.Merge(field, messages)
					}
				}
			}

			for name, tag := range schema.Params {
				agg.Merge(name, v.CheckVar(c.Param(name), name, tag))
			}
			for name, tag := range schema.Query {
				agg.Merge(name, v.CheckVar(c.QueryParam(name), name, tag))
			}

			if !agg.Empty() {
				return apperrors.NewValidationError(agg.Errors)
			}

			if body != nil {
				c.Set(validatedBodyKey, body)
			}
			return next(c)
		}
	}
}

// BoundBody returns the validated request body set by Validate, or nil if
// the route declared no body schema
func BoundBody[T any](c echo.Context) *T {
	if v, ok := c.Get(validatedBodyKey).(*T); ok {
		return v
	}
	return nil
}
