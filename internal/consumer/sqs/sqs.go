// Package sqs is an aws sqs implementation of consumer.
package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/consumer"
	"github.com/Adefolalu/clinkers/internal/farcaster"
	"github.com/Adefolalu/clinkers/internal/producer"
	"github.com/Adefolalu/clinkers/internal/storage"
)

var _ consumer.Consumer = &impl{}

var log = logrus.WithField("package", "consumer.sqs")

// nolint:gochecknoglobals
var (
	// how long the message is locked from other consumers in seconds
	visibilityTimeout int64 = 10
	// how long consumer will wait for the next messages in seconds
	waitTimeSeconds int64 = 20
)

type impl struct {
	is storage.IndexStorage
	n  farcaster.Notifier

	sqs      *sqs.SQS
	queueURL string
	bulkSize uint

	appURL string
}

// New returns new instance of impl.
func New(is storage.IndexStorage, n farcaster.Notifier, sqs *sqs.SQS, queueURL string, bulkSize uint, appURL string) *impl { // nolint:golint
	return &impl{
		is: is,
		n:  n,

		sqs:      sqs,
		queueURL: queueURL,
		bulkSize: bulkSize,

		appURL: strings.TrimSuffix(appURL, "/"),
	}
}

// Run consumes mint messages from SQS and notifies the minters.
func (i *impl) Run(ctx context.Context) error {
	var maxNumberOfMessages *int64
	if i.bulkSize > 0 {
		v := int64(i.bulkSize)
		maxNumberOfMessages = &v
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		out, err := i.sqs.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
			MaxNumberOfMessages: maxNumberOfMessages,
			QueueUrl:            &i.queueURL,
			VisibilityTimeout:   &visibilityTimeout,
			WaitTimeSeconds:     &waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.WithError(err).Error("failed to receive messages")
			continue
		}

		if len(out.Messages) == 0 {
			continue
		}

		if err := i.processMessages(out.Messages); err != nil {
			log.WithError(err).Error("failed to process messages")
		}
	}
}

func (i *impl) processMessages(msgs []*sqs.Message) error {
	ctx := context.Background()

	var (
		toDelete []*sqs.DeleteMessageBatchRequestEntry

		mu sync.Mutex
	)

	parallel(4, func(m *sqs.Message) {
		deleteMsg := true

		var mint producer.MintMessage
		if err := json.Unmarshal([]byte(*m.Body), &mint); err != nil {
			// a malformed message would redeliver until the retention expires
			log.WithError(err).Error("failed to unmarshal message")
		} else {
			deleteMsg = i.processMint(ctx, &mint)
		}

		if !deleteMsg {
			return
		}

		mu.Lock()
		toDelete = append(toDelete, &sqs.DeleteMessageBatchRequestEntry{
			Id:            m.MessageId,
			ReceiptHandle: m.ReceiptHandle,
		})
		mu.Unlock()
	}, msgs)

	if len(toDelete) == 0 {
		return nil
	}

	if _, err := i.sqs.DeleteMessageBatch(&sqs.DeleteMessageBatchInput{
		Entries:  toDelete,
		QueueUrl: &i.queueURL,
	}); err != nil {
		return fmt.Errorf("failed to delete messages from sqs: %w", err)
	}

	return nil
}

func (i *impl) processMint(ctx context.Context, m *producer.MintMessage) (deleteMsg bool) {
	l := log.WithFields(logrus.Fields{
		"fid":   m.FID,
		"token": m.TokenID,
	})

	t, err := i.is.GetNotificationToken(ctx, m.FID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return true
		}

		l.WithError(err).Error("failed to get notification token")
		return false
	}

	if !t.Enabled {
		return true
	}

	err = i.n.Notify(ctx, t.URL, t.Token, farcaster.Notification{
		ID:        fmt.Sprintf("mint-%d-%d", m.FID, m.TokenID),
		Title:     "Your Clinker was forged",
		Body:      fmt.Sprintf("Clinker #%d crawled out of the forge. Come take a look.", m.TokenID),
		TargetURL: fmt.Sprintf("%s/clinkers/%d", i.appURL, m.FID),
	})

	switch {
	case err == nil:
		l.Info("mint notification sent")
		return true
	case errors.Is(err, farcaster.ErrTokenInvalid):
		if err := i.is.DeleteNotificationToken(ctx, m.FID); err != nil {
			l.WithError(err).Error("failed to delete invalid notification token")
			return false
		}

		return true
	case errors.Is(err, farcaster.ErrRateLimited):
		// redelivered after the visibility timeout
		return false
	default:
		l.WithError(err).Error("failed to send notification")
		return false
	}
}

func parallel(routines int, f func(m *sqs.Message), batch []*sqs.Message) {
	var wg sync.WaitGroup

	ch := make(chan *sqs.Message)

	for i := 0; i < routines; i++ {
		wg.Add(1)

		go func() {
			for m := range ch {
				f(m)
			}
			wg.Done()
		}()
	}

	for _, v := range batch {
		ch <- v
	}
	close(ch)

	wg.Wait()
}
