// README: FCM multicast push client.
package notify

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// Pusher delivers one notification payload to a token set in a single
// multicast call.
type Pusher interface {
	SendMulticast(ctx context.Context, title, body string, tokens []string) error
}

// FCMPusher sends via Firebase Cloud Messaging.
type FCMPusher struct {
	client *messaging.Client
}

func NewFCMPusher(client *messaging.Client) *FCMPusher {
	return &FCMPusher{client: client}
}

func (p *FCMPusher) SendMulticast(ctx context.Context, title, body string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	resp, err := p.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return fmt.Errorf("sending multicast push: %w", err)
	}
	// Per-token failures are logged only; nothing retries or evicts tokens yet.
	if resp.FailureCount > 0 {
		log.Printf("push: %d/%d tokens failed", resp.FailureCount, len(tokens))
	}
	return nil
}
