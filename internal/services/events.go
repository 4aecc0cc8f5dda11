package services

import (
	"context"
	"log"
	"time"

	"gymfit/internal/queue"
)

const publishTimeout = 3 * time.Second

// publishEvent runs after commit. Failures are logged and never reach the caller.
func publishEvent(ctx context.Context, pub queue.Publisher, ev queue.Event) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := pub.Publish(ctx, ev); err != nil {
		log.Printf("Failed to publish %s event for %s: %v", ev.Type, ev.ObjectID, err)
	}
}
