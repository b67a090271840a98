package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Akoirala47/bett/models"
)

// Notification permission states as the platform reports them.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// AgentSubscription is a push subscription as handed out by the platform's
// background notification agent.
type AgentSubscription struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// LocalNotification mirrors the platform's show-notification call.
type LocalNotification struct {
	Title              string
	Body               string
	Icon               string
	Tag                string
	RequireInteraction bool
}

// Agent is a registered background notification agent.
type Agent interface {
	Permission() Permission
	RequestPermission(ctx context.Context) (Permission, error)
	// Existing returns the current subscription, or nil when none exists.
	Existing(ctx context.Context) (*AgentSubscription, error)
	// Subscribe creates a new subscription keyed to the server public key.
	Subscribe(ctx context.Context, serverKey string) (*AgentSubscription, error)
	Show(ctx context.Context, n LocalNotification) error
}

// Platform abstracts the notification surface a client runs on. Register
// returns (nil, nil) when the platform has no background-agent support;
// callers degrade to in-app-only notifications.
type Platform interface {
	Register(ctx context.Context) (Agent, error)
}

// PushManager manages a client's push opt-in. Every operation degrades to
// nil on platform incapability or permission refusal; none of those are
// surfaced as errors.
type PushManager struct {
	platform  Platform
	serverKey string
}

func NewPushManager(platform Platform, serverKey string) *PushManager {
	return &PushManager{platform: platform, serverKey: serverKey}
}

// Register idempotently registers the background agent. A nil agent with a
// nil error means the platform lacks support.
func (m *PushManager) Register(ctx context.Context) (Agent, error) {
	if m.platform == nil {
		return nil, nil
	}
	agent, err := m.platform.Register(ctx)
	if err != nil {
		return nil, nil
	}
	return agent, nil
}

// Subscribe returns the existing subscription if one is already held
// (making no new subscription request), otherwise asks for permission and
// subscribes. Unsupported platform, denied permission and subscription
// failure all return nil, nil.
func (m *PushManager) Subscribe(ctx context.Context) (*AgentSubscription, error) {
	agent, err := m.Register(ctx)
	if err != nil || agent == nil {
		return nil, nil
	}

	if existing, err := agent.Existing(ctx); err == nil && existing != nil {
		return existing, nil
	}

	perm := agent.Permission()
	if perm == PermissionDefault {
		perm, err = agent.RequestPermission(ctx)
		if err != nil {
			return nil, nil
		}
	}
	if perm != PermissionGranted {
		return nil, nil
	}

	sub, err := agent.Subscribe(ctx, m.serverKey)
	if err != nil {
		return nil, nil
	}
	return sub, nil
}

// ShowLocal raises a local notification when permission has already been
// granted. Everything else is a silent no-op; it never prompts.
func (m *PushManager) ShowLocal(ctx context.Context, category, rivalName string, betAmount int) {
	agent, err := m.Register(ctx)
	if err != nil || agent == nil {
		return
	}
	if agent.Permission() != PermissionGranted {
		return
	}
	_ = agent.Show(ctx, LocalNotification{
		Title:              TauntTitle(category),
		Body:               RandomTaunt(category, rivalName, betAmount),
		Icon:               "/icon.svg",
		Tag:                fmt.Sprintf("rival-%s-%d", category, time.Now().UnixMilli()),
		RequireInteraction: true,
	})
}

// ExtractSubscription converts an agent subscription into the persistable
// record the relay looks up server-side.
func ExtractSubscription(userID uint, sub *AgentSubscription) *models.PushSubscription {
	if sub == nil {
		return nil
	}
	return &models.PushSubscription{
		UserID:   userID,
		Endpoint: sub.Endpoint,
		P256dh:   sub.P256dh,
		Auth:     sub.Auth,
	}
}
