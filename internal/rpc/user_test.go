package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"viewify/internal/model"
)

// MockProfileStore is a mock implementation of ProfileStore.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func TestUserMe(t *testing.T) {
	t.Run("anonymous context returns null without touching storage", func(t *testing.T) {
		store := new(MockProfileStore)
		registry := Merge(UserRouter(store))
		proc, ok := registry.Lookup("user.me")
		assert.True(t, ok)

		out, err := proc.Call(context.Background(), Ctx{}, nil)
		assert.NoError(t, err)
		assert.Nil(t, out.(*model.UserProfile))
		store.AssertNotCalled(t, "FindProfileByID", mock.Anything, mock.Anything)
	})

	t.Run("authenticated context returns the fixed projection", func(t *testing.T) {
		profile := &model.UserProfile{
			ID:            "user-42",
			Name:          "Manav",
			Email:         "manav@example.com",
			EmailVerified: true,
		}
		store := new(MockProfileStore)
		store.On("FindProfileByID", mock.Anything, "user-42").Return(profile, nil)

		registry := Merge(UserRouter(store))
		proc, _ := registry.Lookup("user.me")

		out, err := proc.Call(context.Background(), Ctx{UserID: "user-42"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, profile, out)
		store.AssertExpectations(t)
	})

	t.Run("lookup miss propagates as a storage error", func(t *testing.T) {
		store := new(MockProfileStore)
		store.On("FindProfileByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)

		registry := Merge(UserRouter(store))
		proc, _ := registry.Lookup("user.me")

		_, err := proc.Call(context.Background(), Ctx{UserID: "gone"}, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
