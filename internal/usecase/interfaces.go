package usecase

import "context"

// AuthProvider is the credential store behind register/login/reset. The
// production implementation is Firebase Auth.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}

// EventPublisher emits order lifecycle events. Publishing is best-effort
// and asynchronous; order state never depends on it.
type EventPublisher interface {
	Publish(key, value []byte)
}

// ChatNotifier pushes a chat message to a connected user, if any.
type ChatNotifier interface {
	SendToUser(userID string, message []byte)
}
