package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oksasatya/medlink-api/config"
	"github.com/oksasatya/medlink-api/pkg/helpers"
	"github.com/oksasatya/medlink-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue, 16)
	if err != nil {
		logger.Fatalf("amqp: %v", err)
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries()
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	w := &worker{sender: mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender), log: logger, timeout: 15 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			switch w.handle(ctx, msg.Body) {
			case outcomeAck:
				_ = msg.Ack(false)
			case outcomeRetry:
				_ = msg.Nack(false, true)
			default:
				_ = msg.Nack(false, false)
			}
		}
	}()

	logger.Infof("email worker listening on queue=%s", cfg.RabbitMQEmailQueue)
	select {
	case <-ctx.Done():
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("shutting down...")
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
