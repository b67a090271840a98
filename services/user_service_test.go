package services

import (
	"errors"
	"testing"

	"github.com/Akoirala47/bett/config"
)

func TestRegisterUserLobbyFull(t *testing.T) {
	config.DB = newTestDB(t)

	if _, err := RegisterUser("one@bett.app", "hunter22", "One"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := RegisterUser("two@bett.app", "hunter22", "Two"); err != nil {
		t.Fatalf("second registration: %v", err)
	}

	// The game is built for exactly two. A third account is refused before
	// any insert is attempted.
	_, err := RegisterUser("three@bett.app", "hunter22", "Three")
	if !errors.Is(err, ErrLobbyFull) {
		t.Errorf("third registration err = %v, want ErrLobbyFull", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	config.DB = newTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := RegisterUser("one@bett.app", "hunter22", "One"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := AuthenticateUser("one@bett.app", "hunter22")
	if err != nil || token == "" {
		t.Fatalf("AuthenticateUser = %q, %v", token, err)
	}

	if _, err := AuthenticateUser("one@bett.app", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := AuthenticateUser("nobody@bett.app", "hunter22"); err == nil {
		t.Error("unknown user accepted")
	}
}
