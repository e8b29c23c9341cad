package api

import (
	"context"

	"github.com/rpupo63/playground-backend/services"
)

type keyType string

const (
	requestIDKey keyType = "requestID"
	sessionKey   keyType = "session"
)

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID returns the request ID, or "" outside a request
func ctxGetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ctxWithSession adds the caller's editing session to the context
func ctxWithSession(ctx context.Context, session services.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession returns the session stored by withSession. Requests without
// one are treated as unsaved work.
func ctxGetSession(ctx context.Context) services.Session {
	session, _ := ctx.Value(sessionKey).(services.Session)
	return session
}
