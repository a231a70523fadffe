package rpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "viewify/internal/errors"
	"viewify/internal/model"
)

// MockProductStore is a mock implementation of ProductStore.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) FindMany(ctx context.Context, userID *string) ([]model.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func validCreateInput() string {
	return `{
		"title": "Wireless Headphones",
		"description": "Noise cancelling",
		"status": "Active",
		"price": "129.99",
		"compareAtPrice": 15999,
		"sku": "WH-1000",
		"trackInventory": true,
		"inventory": "45",
		"category": "Electronics",
		"tags": "audio,featured",
		"userId": "2ad54915-2f63-4aa5-9a31-584a5ed4b497"
	}`
}

func TestProductsCreate(t *testing.T) {
	t.Run("persisted row echoes the input with generated id and timestamp", func(t *testing.T) {
		store := new(MockProductStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*model.Product)
				p.ID = uuid.New()
				p.CreatedAt = time.Now()
			}).
			Return(nil)

		registry := Merge(ProductsRouter(store))
		proc, ok := registry.Lookup("products.create")
		assert.True(t, ok)

		out, err := proc.Call(context.Background(), Ctx{}, json.RawMessage(validCreateInput()))
		assert.NoError(t, err)

		product := out.(*model.Product)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.False(t, product.CreatedAt.IsZero())
		assert.Equal(t, "Wireless Headphones", product.Title)
		assert.Equal(t, "Noise cancelling", product.Description)
		assert.Equal(t, model.StatusActive, product.Status)
		assert.Equal(t, "129.99", product.Price)
		assert.Equal(t, 15999, product.CompareAtPrice)
		assert.Equal(t, "WH-1000", *product.SKU)
		assert.True(t, product.TrackInventory)
		assert.Equal(t, "45", product.Inventory)
		assert.Equal(t, "Electronics", product.Category)
		assert.Equal(t, "audio,featured", *product.Tags)
		assert.Equal(t, "2ad54915-2f63-4aa5-9a31-584a5ed4b497", *product.UserID)
		store.AssertExpectations(t)
	})

	tests := []struct {
		name      string
		mutate    func(m map[string]any)
		wantField string
	}{
		{
			name:      "title shorter than two characters",
			mutate:    func(m map[string]any) { m["title"] = "W" },
			wantField: "title",
		},
		{
			name:      "missing description",
			mutate:    func(m map[string]any) { delete(m, "description") },
			wantField: "description",
		},
		{
			name:      "archived is not a writable status",
			mutate:    func(m map[string]any) { m["status"] = "Archived" },
			wantField: "status",
		},
		{
			name:      "price must be decimal text",
			mutate:    func(m map[string]any) { m["price"] = "free" },
			wantField: "price",
		},
		{
			name:      "inventory must be decimal text",
			mutate:    func(m map[string]any) { m["inventory"] = "lots" },
			wantField: "inventory",
		},
		{
			name:      "missing category",
			mutate:    func(m map[string]any) { delete(m, "category") },
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input map[string]any
			assert.NoError(t, json.Unmarshal([]byte(validCreateInput()), &input))
			tt.mutate(input)
			raw, err := json.Marshal(input)
			assert.NoError(t, err)

			store := new(MockProductStore)
			registry := Merge(ProductsRouter(store))
			proc, _ := registry.Lookup("products.create")

			_, err = proc.Call(context.Background(), Ctx{}, raw)

			var verr *apperrors.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
			// Nothing persisted on validation failure.
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductsGetMany(t *testing.T) {
	owner := "2ad54915-2f63-4aa5-9a31-584a5ed4b497"
	rows := []model.Product{
		{ID: uuid.New(), Title: "Newest", CreatedAt: time.Now()},
		{ID: uuid.New(), Title: "Older", CreatedAt: time.Now().Add(-time.Hour)},
	}

	tests := []struct {
		name       string
		input      string
		wantUserID *string
	}{
		{
			name:       "no filter returns the full catalog",
			input:      `{}`,
			wantUserID: nil,
		},
		{
			name:       "owner filter is passed through to storage",
			input:      `{"userId":"` + owner + `"}`,
			wantUserID: &owner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockProductStore)
			store.On("FindMany", mock.Anything, mock.MatchedBy(func(userID *string) bool {
				if tt.wantUserID == nil {
					return userID == nil
				}
				return userID != nil && *userID == *tt.wantUserID
			})).Return(rows, nil)

			registry := Merge(ProductsRouter(store))
			proc, _ := registry.Lookup("products.getMany")

			out, err := proc.Call(context.Background(), Ctx{}, json.RawMessage(tt.input))
			assert.NoError(t, err)

			got := out.([]model.Product)
			assert.Len(t, got, 2)
			// Storage orders by creation time descending; the procedure
			// returns rows untouched.
			assert.Equal(t, "Newest", got[0].Title)
			assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
			store.AssertExpectations(t)
		})
	}
}
