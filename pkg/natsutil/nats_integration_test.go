//go:build integration

package natsutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

func natsURL() string {
	if v := os.Getenv("NATS_URL"); v != "" {
		return v
	}
	return nats.DefaultURL
}

func connectNATS(t *testing.T) *nats.Conn {
	t.Helper()
	nc, err := nats.Connect(natsURL())
	if err != nil {
		t.Fatalf("nats connect: %v", err)
	}
	t.Cleanup(func() { nc.Close() })
	return nc
}

func TestNATS_PubSub(t *testing.T) {
	nc := connectNATS(t)

	ch := make(chan testEvent, 1)
	sub, err := Subscribe(nc, "integ.pubsub", func(ctx context.Context, e testEvent) {
		ch <- e
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	if err := Publish(context.Background(), nc, "integ.pubsub", testEvent{Brand: "Skoda", Models: 6}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case got := <-ch:
		if got.Brand != "Skoda" {
			t.Fatalf("expected Skoda, got %q", got.Brand)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestNATS_HeadersRoundTrip(t *testing.T) {
	nc := connectNATS(t)

	ch := make(chan string, 1)
	sub, err := SubscribeMsg(nc, "integ.headers", func(ctx context.Context, e testEvent, msg *nats.Msg) {
		ch <- msg.Header.Get("X-Retry-Count")
	})
	if err != nil {
		t.Fatalf("SubscribeMsg: %v", err)
	}
	defer sub.Unsubscribe()

	hdr := nats.Header{}
	hdr.Set("X-Retry-Count", "1")
	if err := PublishHeaders(context.Background(), nc, "integ.headers", testEvent{Brand: "Audi"}, hdr); err != nil {
		t.Fatalf("PublishHeaders: %v", err)
	}

	select {
	case got := <-ch:
		if got != "1" {
			t.Fatalf("expected retry count 1, got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}
