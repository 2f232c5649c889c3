package testutil

import (
	"bytes"
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type PublishedEvent struct {
	Type    string
	Key     string
	Payload any
}

// RecordingPublisher keeps every published event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, eventType string, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, PublishedEvent{Type: eventType, Key: key, Payload: payload})
	return nil
}

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		out = append(out, e.Type)
	}
	return out
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

// RecordingMailer keeps every message instead of sending it.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *RecordingMailer) SendMail(toEmail string, subject string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: toEmail, Subject: subject, Body: body})
	return nil
}

// MemoryStorage is an in-memory object store with the S3 link format.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string]string
	Deleted []string
	Err     error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: map[string]string{}}
}

func (m *MemoryStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	key := folder + "/" + fileName + strings.ToLower(filepath.Ext(file.Filename))
	m.Objects[key] = file.Filename
	return key, nil
}

func (m *MemoryStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Objects[objectKey] = file.Filename
	return objectKey, nil
}

func (m *MemoryStorage) DeleteFile(objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, objectKey)
	m.Deleted = append(m.Deleted, objectKey)
	return nil
}

func (m *MemoryStorage) GetPublicLinkKey(objectKey string) string {
	return storageBaseURL + objectKey
}

func (m *MemoryStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, storageBaseURL) {
		return ""
	}
	return strings.TrimPrefix(link, storageBaseURL)
}

const storageBaseURL = "https://test-bucket.s3.local/"

// NewFileHeader builds a multipart file header the way Fiber hands it to handlers.
func NewFileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File[field][0]
}
