package rpc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "viewify/internal/errors"
)

type sampleInput struct {
	Title string `json:"title" validate:"required,min=2"`
	Price string `json:"price" validate:"required,decimal"`
}

func TestProcedure_ValidationRunsBeforeBody(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantBodyRun bool
		wantField   string
	}{
		{
			name:        "valid input reaches the body",
			input:       `{"title":"Notebook","price":"12.50"}`,
			wantBodyRun: true,
		},
		{
			name:      "short title fails before the body",
			input:     `{"title":"N","price":"12.50"}`,
			wantField: "title",
		},
		{
			name:      "missing title fails before the body",
			input:     `{"price":"12.50"}`,
			wantField: "title",
		},
		{
			name:      "non-decimal price fails before the body",
			input:     `{"title":"Notebook","price":"twelve"}`,
			wantField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyRun := false
			proc := NewMutation("test", func(_ context.Context, _ Ctx, input sampleInput) (string, error) {
				bodyRun = true
				return input.Title, nil
			})

			out, err := proc.Call(context.Background(), Ctx{}, json.RawMessage(tt.input))

			assert.Equal(t, tt.wantBodyRun, bodyRun)
			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.Equal(t, "Notebook", out)
				return
			}
			var verr *apperrors.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
			assert.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}

func TestProcedure_MalformedInput(t *testing.T) {
	proc := NewQuery("test", func(_ context.Context, _ Ctx, input sampleInput) (string, error) {
		t.Fatal("body must not run on malformed input")
		return "", nil
	})

	_, err := proc.Call(context.Background(), Ctx{}, json.RawMessage(`{"title":`))
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
}

func TestProcedure_EmptyInput(t *testing.T) {
	proc := NewQuery("test", func(_ context.Context, rctx Ctx, _ Empty) (string, error) {
		return rctx.UserID, nil
	})

	out, err := proc.Call(context.Background(), Ctx{UserID: "u-1"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", out)
}

func TestProcedure_KindIsAdvisory(t *testing.T) {
	q := NewQuery("q", func(_ context.Context, _ Ctx, _ Empty) (bool, error) { return true, nil })
	m := NewMutation("m", func(_ context.Context, _ Ctx, _ Empty) (bool, error) { return true, nil })

	assert.Equal(t, KindQuery, q.Kind)
	assert.Equal(t, KindMutation, m.Kind)

	// Both execute the same way; nothing in the base branches on Kind.
	for _, proc := range []Procedure{q, m} {
		out, err := proc.Call(context.Background(), Ctx{}, nil)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	}
}
