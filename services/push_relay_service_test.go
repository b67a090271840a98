package services

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Akoirala47/bett/models"

	"github.com/golang-jwt/jwt/v5"
)

type fakeSigner struct {
	audiences []string
}

func (s *fakeSigner) Sign(audience string) (string, string, error) {
	s.audiences = append(s.audiences, audience)
	return "signed-token", "server-public-key", nil
}

func TestRelaySendNoSubscription(t *testing.T) {
	db := newTestDB(t)
	relay := NewPushRelay(db, &fakeSigner{})

	_, err := relay.Send(RelayRequest{RivalUserID: 42, Type: "gym", ActorName: "Alex"})
	if !errors.Is(err, ErrNoSubscription) {
		t.Errorf("err = %v, want ErrNoSubscription", err)
	}
}

func TestRelaySendDelivers(t *testing.T) {
	var gotAuth, gotTTL, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTTL = r.Header.Get("TTL")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	db := newTestDB(t)
	signer := &fakeSigner{}
	relay := NewPushRelay(db, signer)

	sub := models.PushSubscription{UserID: 2, Endpoint: server.URL + "/send/abc", P256dh: "p", Auth: "a"}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	n, err := relay.Send(RelayRequest{RivalUserID: 2, Type: "gym", ActorName: "Alex", BetAmount: 50})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if n.Title == "" || n.Body == "" {
		t.Errorf("notification missing content: %+v", n)
	}
	if strings.Contains(n.Body, "{rival}") || strings.Contains(n.Body, "${amount}") {
		t.Errorf("unsubstituted placeholder in %q", n.Body)
	}
	if gotAuth != "vapid t=signed-token, k=server-public-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotTTL != "86400" {
		t.Errorf("TTL = %q, want 86400", gotTTL)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	// The token must be bound to the endpoint's origin, not its full path.
	if len(signer.audiences) != 1 || signer.audiences[0] != server.URL {
		t.Errorf("signed audiences = %v, want [%s]", signer.audiences, server.URL)
	}
}

func TestRelaySendPrunesGoneSubscription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	db := newTestDB(t)
	relay := NewPushRelay(db, &fakeSigner{})

	sub := models.PushSubscription{UserID: 2, Endpoint: server.URL}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	_, err := relay.Send(RelayRequest{RivalUserID: 2, Type: "weight"})
	if !errors.Is(err, ErrSubscriptionGone) {
		t.Fatalf("err = %v, want ErrSubscriptionGone", err)
	}

	// Pruned: the next send short-circuits without an HTTP call.
	_, err = relay.Send(RelayRequest{RivalUserID: 2, Type: "weight"})
	if !errors.Is(err, ErrNoSubscription) {
		t.Errorf("err after prune = %v, want ErrNoSubscription", err)
	}
}

func TestRelaySendServerErrorNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	db := newTestDB(t)
	relay := NewPushRelay(db, &fakeSigner{})

	sub := models.PushSubscription{UserID: 2, Endpoint: server.URL}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	_, err := relay.Send(RelayRequest{RivalUserID: 2})
	if err == nil {
		t.Fatal("expected delivery error")
	}
	if calls != 1 {
		t.Errorf("endpoint called %d times, want 1 (no retries)", calls)
	}

	// Non-gone failures keep the subscription.
	var count int64
	db.Model(&models.PushSubscription{}).Where("user_id = ?", 2).Count(&count)
	if count != 1 {
		t.Errorf("subscription rows = %d, want 1", count)
	}
}

func TestVAPIDSigner(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	raw := make([]byte, 32)
	key.D.FillBytes(raw)
	privB64 := base64.RawURLEncoding.EncodeToString(raw)
	pub := elliptic.Marshal(elliptic.P256(), key.PublicKey.X, key.PublicKey.Y)
	pubB64 := base64.RawURLEncoding.EncodeToString(pub)

	signer, err := NewVAPIDSigner(privB64, pubB64, "mailto:admin@bett.app")
	if err != nil {
		t.Fatalf("NewVAPIDSigner: %v", err)
	}

	token, gotPub, err := signer.Sign("https://push.example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if gotPub != pubB64 {
		t.Errorf("public key = %q, want the configured one", gotPub)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return &key.PublicKey, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["aud"] != "https://push.example.com" {
		t.Errorf("aud = %v", claims["aud"])
	}
	if claims["sub"] != "mailto:admin@bett.app" {
		t.Errorf("sub = %v", claims["sub"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("exp claim missing")
	}
}

func TestNewVAPIDSignerRejectsBadKey(t *testing.T) {
	if _, err := NewVAPIDSigner("not-base64!!!", "pub", "mailto:x"); err == nil {
		t.Error("expected error for undecodable key")
	}
	short := base64.RawURLEncoding.EncodeToString([]byte("short"))
	if _, err := NewVAPIDSigner(short, "pub", "mailto:x"); err == nil {
		t.Error("expected error for wrong-length key")
	}
}
