package rpc

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"viewify/internal/errors"
)

// Kind tags a procedure as a query or a mutation. The distinction is
// advisory: nothing in the base inspects it when a procedure runs.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Empty is the input type for procedures that take no input.
type Empty struct{}

// Handler executes a procedure against raw JSON input.
type Handler func(ctx context.Context, rctx Ctx, input json.RawMessage) (any, error)

// Procedure is a named, schema-validated remote operation.
type Procedure struct {
	Name    string
	Kind    Kind
	handler Handler
}

// Call decodes and validates the input, then runs the body. On validation
// failure the body never executes and the caller gets field-level errors.
func (p Procedure) Call(ctx context.Context, rctx Ctx, input json.RawMessage) (any, error) {
	return p.handler(ctx, rctx, input)
}

// NewQuery builds a query procedure from a typed body.
func NewQuery[I any, O any](name string, body func(ctx context.Context, rctx Ctx, input I) (O, error)) Procedure {
	return Procedure{Name: name, Kind: KindQuery, handler: typedHandler(body)}
}

// NewMutation builds a mutation procedure from a typed body.
func NewMutation[I any, O any](name string, body func(ctx context.Context, rctx Ctx, input I) (O, error)) Procedure {
	return Procedure{Name: name, Kind: KindMutation, handler: typedHandler(body)}
}

func typedHandler[I any, O any](body func(ctx context.Context, rctx Ctx, input I) (O, error)) Handler {
	return func(ctx context.Context, rctx Ctx, raw json.RawMessage) (any, error) {
		var input I
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &input); err != nil {
				return nil, errors.ErrMalformedInput
			}
		}
		if err := validate.Struct(&input); err != nil {
			return nil, asValidationError(err)
		}
		return body(ctx, rctx, input)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire (json) names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal: the field holds a decimal number as text.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})

	return v
}

func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &errors.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "decimal":
		return "must be a decimal number"
	default:
		return "is invalid"
	}
}
