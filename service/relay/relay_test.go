package relay_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carelane/medreview/service/confirm"
	regmem "github.com/carelane/medreview/service/confirm/memory"
	"github.com/carelane/medreview/service/relay"
)

func TestNotifyPublishesRequest(t *testing.T) {
	ctx := context.Background()
	registry := regmem.New()
	svc := relay.New(registry)

	request := &confirm.Request{Token: "tok-1", Responder: "Dr. Smith", Prompt: "confirm?"}
	assert.NoError(t, svc.Notify(ctx, request))

	msg, err := svc.Queue().Consume(ctx)
	assert.NoError(t, err)
	event := msg.T()
	assert.NoError(t, msg.Ack())
	assert.Equal(t, confirm.TopicRequestCreated, event.Topic)
	assert.Equal(t, request, event.Data)
}

func TestSubmitResolvesPendingRequest(t *testing.T) {
	ctx := context.Background()
	registry := regmem.New()
	svc := relay.New(registry)

	req, err := registry.Request(ctx, &confirm.Request{Responder: "Dr. Smith", TreatmentID: "TRT-002"})
	assert.NoError(t, err)

	go func() {
		time.Sleep(5 * time.Millisecond)
		assert.NoError(t, svc.Submit(ctx, "Dr. Smith", "yes"))
	}()

	response, err := registry.AwaitResponse(ctx, req.Token, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "yes", response.Text)
}

func TestSubmitUnmatchedIsObservable(t *testing.T) {
	ctx := context.Background()
	svc := relay.New(regmem.New())

	err := svc.Submit(ctx, "Dr. Smith", "yes")
	assert.ErrorIs(t, err, confirm.ErrUnmatchedResponse)
}

func TestAutoResponder(t *testing.T) {
	ctx := context.Background()
	registry := regmem.New()
	svc := relay.New(registry)

	stop := relay.AutoResponder(ctx, svc, func(request *confirm.Request) (string, bool) {
		return "yes", true
	})
	defer stop()

	req, err := registry.Request(ctx, &confirm.Request{Responder: "Dr. Smith", TreatmentID: "TRT-002"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Notify(ctx, req))

	response, err := registry.AwaitResponse(ctx, req.Token, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "yes", response.Text)
	assert.Equal(t, 0, registry.Pending())
}
