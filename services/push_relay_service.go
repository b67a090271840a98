package services

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/Akoirala47/bett/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrNoSubscription   = errors.New("no push subscription found")
	ErrSubscriptionGone = errors.New("push subscription gone")
)

// RelayRequest is the body of POST /push/send.
type RelayRequest struct {
	RivalUserID uint   `json:"rival_user_id" binding:"required"`
	Type        string `json:"type"`
	ActorName   string `json:"actor_name"`
	BetAmount   int    `json:"bet_amount"`
}

// RelayNotification is what ends up on the rival's screen.
type RelayNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Signer produces the authorization token attached to a push delivery.
// Pluggable so alternate signature schemes can be swapped in without
// touching dispatch.
type Signer interface {
	// Sign returns a short-lived token bound to the push endpoint's origin,
	// plus the public key the push service verifies it against.
	Sign(audience string) (token, publicKey string, err error)
}

// VAPIDSigner signs an ES256 JWT over {aud, exp, sub}, the voluntary
// application server identification scheme browser push services expect.
type VAPIDSigner struct {
	privateKey *ecdsa.PrivateKey
	publicKey  string
	subject    string
}

// NewVAPIDSigner takes the base64url-encoded raw P-256 key pair
// (the usual VAPID key format) and the contact subject (mailto: or https:).
func NewVAPIDSigner(privateB64, publicB64, subject string) (*VAPIDSigner, error) {
	raw, err := base64.RawURLEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, fmt.Errorf("decode VAPID private key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("VAPID private key must be 32 bytes, got %d", len(raw))
	}

	curve := elliptic.P256()
	x, y := curve.ScalarBaseMult(raw)
	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         new(big.Int).SetBytes(raw),
	}
	return &VAPIDSigner{privateKey: key, publicKey: publicB64, subject: subject}, nil
}

func (s *VAPIDSigner) Sign(audience string) (string, string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"aud": audience,
		"exp": time.Now().Add(12 * time.Hour).Unix(),
		"sub": s.subject,
	})
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", "", err
	}
	return signed, s.publicKey, nil
}

// PushRelay looks up the rival's stored subscription, signs a delivery
// request and forwards the notification payload to the push endpoint.
// Delivery is at-most-once; nothing is retried.
type PushRelay struct {
	db     *gorm.DB
	signer Signer
	client *http.Client
}

func NewPushRelay(db *gorm.DB, signer Signer) *PushRelay {
	return &PushRelay{
		db:     db,
		signer: signer,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *PushRelay) Send(req RelayRequest) (*RelayNotification, error) {
	var sub models.PushSubscription
	err := r.db.Where("user_id = ?", req.RivalUserID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSubscription
	}
	if err != nil {
		return nil, err
	}

	category := req.Type
	if category == "" {
		category = EventGym
	}
	actor := req.ActorName
	if actor == "" {
		actor = "Your rival"
	}

	notification := &RelayNotification{
		Title: TauntTitle(category),
		Body:  RandomTaunt(category, actor, req.BetAmount),
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return nil, err
	}

	if r.signer == nil {
		return nil, errors.New("push relay not configured: no signer")
	}
	endpoint, err := url.Parse(sub.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("bad subscription endpoint: %w", err)
	}
	audience := endpoint.Scheme + "://" + endpoint.Host
	token, publicKey, err := r.signer.Sign(audience)
	if err != nil {
		return nil, fmt.Errorf("sign push request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, sub.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("TTL", "86400")
	httpReq.Header.Set("Authorization", fmt.Sprintf("vapid t=%s, k=%s", token, publicKey))

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// Dead endpoint: prune so future sends short-circuit.
		_ = r.db.Delete(&sub).Error
		return nil, ErrSubscriptionGone
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}

	return notification, nil
}
