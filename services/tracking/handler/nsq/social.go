package nsq

import (
	"context"
	"fmt"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/constants"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	nsqpkg "github.com/curbsidelabs/trucktrack/internal/pkg/nsq"
	"github.com/curbsidelabs/trucktrack/services/tracking"
)

const handleTimeout = 5 * time.Second

// SocialConsumer ingests simulated social-media location posts from the
// scraping job's NSQ topic and feeds them into the tracking store.
type SocialConsumer struct {
	trackingUC tracking.TrackingUC
	consumer   *nsqpkg.Consumer
}

// NewSocialConsumer creates and connects the social location consumer
func NewSocialConsumer(cfg models.NSQConfig, trackingUC tracking.TrackingUC) (*SocialConsumer, error) {
	sc := &SocialConsumer{trackingUC: trackingUC}

	topic := cfg.SocialTopic
	if topic == "" {
		topic = constants.TopicSocialLocations
	}
	channel := cfg.ConsumerChannel
	if channel == "" {
		channel = constants.ChannelTracking
	}

	consumer, err := nsqpkg.NewConsumer(topic, channel, cfg.Address, sc.handleMessage)
	if err != nil {
		return nil, fmt.Errorf("creating social location consumer: %w", err)
	}
	sc.consumer = consumer

	if cfg.LookupAddress != "" {
		if err := consumer.ConnectToLookupd([]string{cfg.LookupAddress}); err != nil {
			logger.Warn("Failed to connect to NSQ lookupd",
				logger.String("address", cfg.LookupAddress),
				logger.Err(err))
		}
	}

	return sc, nil
}

// handleMessage processes one social location post. Malformed payloads
// and policy rejections are dropped without requeueing; store outages
// return an error so NSQ redelivers.
func (sc *SocialConsumer) handleMessage(body []byte) error {
	var msg models.SocialLocationMessage
	if err := nsqpkg.UnmarshalMessage(body, &msg); err != nil {
		logger.Error("Dropping malformed social location message", logger.Err(err))
		return nil
	}

	source, err := models.ParseReportSource(msg.Platform)
	if err != nil || !source.IsSocial() {
		logger.Warn("Dropping social message with unknown platform",
			logger.String("platform", msg.Platform),
			logger.String("truck_id", msg.TruckID))
		return nil
	}

	confidence := models.ConfidenceMedium
	if msg.Confidence != "" {
		parsed, err := models.ParseConfidence(string(msg.Confidence))
		if err != nil {
			logger.Warn("Social message carries unknown confidence, using medium",
				logger.String("truck_id", msg.TruckID),
				logger.String("confidence", string(msg.Confidence)))
		} else {
			confidence = parsed
		}
	}

	report := &models.LocationReport{
		Source:     source,
		Latitude:   msg.Latitude,
		Longitude:  msg.Longitude,
		Address:    msg.Address,
		City:       msg.City,
		State:      msg.State,
		Confidence: confidence,
		Notes:      msg.Notes,
		Timestamp:  msg.PostedAt,
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	result, err := sc.trackingUC.SubmitReport(ctx, msg.TruckID, report)
	if err != nil {
		switch {
		case tracking.IsRetryable(err):
			return err
		default:
			logger.Warn("Dropping rejected social location message",
				logger.String("truck_id", msg.TruckID),
				logger.String("platform", msg.Platform),
				logger.Err(err))
			return nil
		}
	}

	logger.Debug("Processed social location message",
		logger.String("truck_id", msg.TruckID),
		logger.String("platform", msg.Platform),
		logger.Bool("accepted", result.Accepted))
	return nil
}

// Stop gracefully stops the consumer
func (sc *SocialConsumer) Stop() {
	if sc.consumer != nil {
		sc.consumer.Stop()
	}
}
