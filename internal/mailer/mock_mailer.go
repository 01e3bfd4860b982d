package mailer

import "sync"

// SentEmail captures one delivery recorded by the mock.
type SentEmail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records deliveries instead of sending them.
type MockMailer struct {
	mu   sync.RWMutex
	sent []SentEmail
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentEmail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// Sent returns a copy of all recorded deliveries.
func (m *MockMailer) Sent() []SentEmail {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := make([]SentEmail, len(m.sent))
	copy(sent, m.sent)

	return sent
}

// Reset clears the recorded deliveries.
func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = nil
}
