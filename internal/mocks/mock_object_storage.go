package mocks

import (
	"context"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockObjectStorage implements domain.ObjectStorage for testing
type MockObjectStorage struct {
	PresignUploadFunc func(ctx context.Context, key string) (string, time.Time, error)
	BaseURL           string
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{BaseURL: "https://bucket.test"}
}

func (m *MockObjectStorage) PresignUpload(ctx context.Context, key string) (string, time.Time, error) {
	if m.PresignUploadFunc != nil {
		return m.PresignUploadFunc(ctx, key)
	}
	return m.BaseURL + "/" + key + "?signed=1", time.Now().Add(15 * time.Minute), nil
}

func (m *MockObjectStorage) ObjectURL(key string) string {
	return m.BaseURL + "/" + key
}

var _ domain.ObjectStorage = (*MockObjectStorage)(nil)
