package notify

import (
	"context"
	"fmt"

	"github.com/QuangTung97/loyalty/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSSender sends SMS through AWS SNS
type SNSSender struct {
	client      *sns.Client
	senderID    string
	messageType string
}

var _ Sender = &SNSSender{}

// NewSNSSender ...
func NewSNSSender(ctx context.Context, conf config.NotificationConfig) (*SNSSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	messageType := conf.MessageType
	if messageType == "" {
		messageType = "Transactional"
	}

	return &SNSSender{
		client:      sns.NewFromConfig(cfg),
		senderID:    conf.SenderID,
		messageType: messageType,
	}, nil
}

// CustomerBoughtCampaign customers without a phone number are skipped
func (s *SNSSender) CustomerBoughtCampaign(ctx context.Context, msg CampaignBoughtMessage) error {
	if msg.Phone == "" {
		return nil
	}

	attrs := map[string]snsTypes.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String(s.messageType),
		},
	}
	if s.senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = snsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(msg.Phone),
		Message:           aws.String(msg.Text()),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("failed to publish sms: %w", err)
	}
	return nil
}
