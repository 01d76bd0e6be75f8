package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/pkg/helpers"
	"github.com/oksasatya/medlink-api/pkg/mailer"
)

type outcome int

const (
	outcomeAck outcome = iota
	// outcomeRetry requeues the message; only delivery failures are retried.
	outcomeRetry
	outcomeDrop
)

type worker struct {
	sender  mailer.Sender
	log     logrus.FieldLogger
	timeout time.Duration
}

// handle decodes, renders and sends one queued job.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogWarn(w.log, "bad message", err, nil)
		return outcomeDrop
	}
	if err := job.Validate(); err != nil {
		helpers.LogWarn(w.log, "invalid job", err, logrus.Fields{"template": job.Template})
		return outcomeDrop
	}

	subject, text, html, err := helpers.RenderJob(&job)
	if err != nil {
		helpers.LogError(w.log, "render failed", err, logrus.Fields{"template": job.Template})
		return outcomeDrop
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.sender.Send(c, job.To, subject, text, html); err != nil {
		helpers.LogError(w.log, "send failed", err, logrus.Fields{"template": job.Template})
		return outcomeRetry
	}
	helpers.LogInfo(w.log, "email sent", logrus.Fields{"template": job.Template})
	return outcomeAck
}
