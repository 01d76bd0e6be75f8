package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/medlink-api/pkg/helpers"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	err  error
	sent []sent
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{to, subject, text, html})
	return nil
}

func newTestWorker(s *fakeSender) *worker {
	return &worker{sender: s, log: helpers.NewDiscardLogger(), timeout: time.Second}
}

func TestHandle_RendersTemplate(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"ana@example.com","template":"REGISTRATION_RECEIVED","data":{"Name":"Ana","CompanyName":"MedLink"}}`)

	got := newTestWorker(s).handle(context.Background(), body)

	assert.Equal(t, outcomeAck, got)
	require.Len(t, s.sent, 1)
	assert.Equal(t, "ana@example.com", s.sent[0].to)
	assert.Contains(t, s.sent[0].subject, "MedLink")
	assert.NotEmpty(t, s.sent[0].html)
}

func TestHandle_RawSubject(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"ana@example.com","subject":"Hello","text":"plain"}`)

	assert.Equal(t, outcomeAck, newTestWorker(s).handle(context.Background(), body))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "Hello", s.sent[0].subject)
	assert.Equal(t, "plain", s.sent[0].text)
}

func TestHandle_DropsUndeliverable(t *testing.T) {
	cases := map[string]string{
		"not json":          `{`,
		"missing recipient": `{"subject":"x"}`,
		"missing subject":   `{"to":"ana@example.com"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s := &fakeSender{}
			assert.Equal(t, outcomeDrop, newTestWorker(s).handle(context.Background(), []byte(body)))
			assert.Empty(t, s.sent)
		})
	}
}

func TestHandle_RetriesOnSendFailure(t *testing.T) {
	s := &fakeSender{err: errors.New("mailgun: 503")}
	body := []byte(`{"to":"ana@example.com","subject":"Hello","text":"plain"}`)

	assert.Equal(t, outcomeRetry, newTestWorker(s).handle(context.Background(), body))
}
