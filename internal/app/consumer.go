package app

import (
	"context"

	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka/consumer"
	"go-hrm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders and mails notification events until the process is signalled.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.NotificationRequestedTopic,
		GroupID:        cfg.ConsumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		return err
	}
	dispatcher := notification.NewDispatcher(notification.NewRenderer(cfg.OrgName, cfg.AppURL), mailer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeNotifications(ctx, reader, dispatcher, logger)
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("consumer shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}

func newMailer(cfg config.Config, logger *zap.Logger) (notification.Mailer, error) {
	if !cfg.Mail.Enabled() {
		logger.Warn("SMTP_HOST not set; notifications will be logged instead of mailed")
		return notification.NewLogMailer(logger), nil
	}
	return notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
}
