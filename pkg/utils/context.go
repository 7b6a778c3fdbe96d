package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	ActorKey     contextKey = "actor"
	PayloadKey   contextKey = "payload"
)

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// SetActor records who is acting on the request, as forwarded by the gateway.
func SetActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// GetActor returns nil when the request carried no actor, matching the nullable audit columns.
func GetActor(ctx context.Context) *string {
	actor, ok := ctx.Value(ActorKey).(string)
	if !ok || actor == "" {
		return nil
	}
	return &actor
}

func SetPayload(ctx context.Context, payload any) context.Context {
	return context.WithValue(ctx, PayloadKey, payload)
}

func GetPayload(ctx context.Context) (any, bool) {
	payload := ctx.Value(PayloadKey)
	return payload, payload != nil
}
