package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/stats"
)

const contentTypeJson = "application/json"

// queuePublisher is the part of RabbitMQ the ReportPublisher needs
type queuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// ReportPublisher publishes the summary of each analysis as JSON in a queue
type ReportPublisher struct {
	publisher queuePublisher
	queueName string
	timeout   time.Duration
}

func NewReportPublisher(publisher queuePublisher, queueName string, timeout time.Duration) *ReportPublisher {
	return &ReportPublisher{
		publisher: publisher,
		queueName: queueName,
		timeout:   timeout,
	}
}

// NewRabbitReportPublisher connects to RabbitMQ and declares the queue. The returned RabbitMQ
// must be closed by the caller.
func NewRabbitReportPublisher(url string, queueConfig QueueDeclarationConfig, timeout time.Duration) (*ReportPublisher, *RabbitMQ, error) {
	rabbitMQ, err := NewRabbitMQ(url)
	if err != nil {
		return nil, nil, err
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]QueueDeclarationConfig{queueConfig})
	if err != nil {
		_ = rabbitMQ.Close()
		return nil, nil, err
	}

	log.Infof("[component: publisher][status: OK] queue %s declared correctly!", queueConfig.Name)
	return NewReportPublisher(rabbitMQ, queueConfig.Name, timeout), rabbitMQ, nil
}

func (rp *ReportPublisher) Publish(ctx context.Context, summary *stats.Summary) error {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshalling summary: %w", err)
	}

	if rp.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rp.timeout)
		defer cancel()
	}

	err = rp.publisher.PublishMessageInQueue(ctx, rp.queueName, summaryBytes, contentTypeJson)
	if err != nil {
		return fmt.Errorf("error publishing %s of %s in %s: %w", summary.Metadata.GetType(), summary.Metadata.GetCity(), rp.queueName, err)
	}

	log.Debugf("[component: publisher][status: OK] %s of %s published in %s: %s", summary.Metadata.GetType(), summary.Metadata.GetCity(), rp.queueName, summary.Filter)
	return nil
}
