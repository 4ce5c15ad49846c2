package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

func (m *MockStore) SetToken(host string, token string) error {
	m.tokens[NormalizeHost(host)] = token
	return nil
}

func (m *MockStore) GetToken(host string) (string, error) {
	token, ok := m.tokens[NormalizeHost(host)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(host string) error {
	key := NormalizeHost(host)
	if _, ok := m.tokens[key]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}
