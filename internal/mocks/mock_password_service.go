package mocks

import "github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"

// MockPasswordService hashes by prefixing, so tests can predict stored hashes
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return hash == "hashed_"+password
}

var _ domain.PasswordService = (*MockPasswordService)(nil)
