package service

import (
	"context"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/token"
)

const testSecret = "test-secret"

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestRegisterHashesAndForcesNonAdmin(t *testing.T) {
	store := &fakeUserStore{}
	sessions := &fakeSessions{}
	svc := NewUserService(store, sessions, testSecret, bcrypt.MinCost)

	tkn, err := svc.Register(context.Background(), &entity.User{
		Username: "bob",
		Password: "hunter2",
		Email:    "bob@example.com",
		IsAdmin:  true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if store.added.Password == "hunter2" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(store.added.Password), []byte("hunter2")); err != nil {
		t.Error("stored hash does not match password")
	}
	if store.added.IsAdmin {
		t.Error("self-registration granted admin")
	}

	claims, err := token.Parse(testSecret, tkn)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != "bob" || claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if sessions.saved["bob"] != tkn {
		t.Error("token not saved in session store")
	}
}

func TestAuthenticateUnknownUserIsFalsy(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	svc := NewUserService(store, &fakeSessions{}, testSecret, bcrypt.MinCost)

	isAdmin, ok, err := svc.Authenticate(context.Background(), "ghost", "pw")
	if err != nil {
		t.Fatalf("bad credentials must not be an error, got %v", err)
	}
	if ok || isAdmin {
		t.Errorf("got ok=%v isAdmin=%v, want falsy", ok, isAdmin)
	}
}

func TestAuthenticateWrongPasswordIsFalsy(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		"bob": {Username: "bob", Password: hashFor(t, "hunter2"), IsAdmin: true},
	}}
	svc := NewUserService(store, &fakeSessions{}, testSecret, bcrypt.MinCost)

	_, ok, err := svc.Authenticate(context.Background(), "bob", "wrong")
	if err != nil {
		t.Fatalf("bad credentials must not be an error, got %v", err)
	}
	if ok {
		t.Error("wrong password authenticated")
	}
}

func TestAuthenticateReturnsStoredAdminFlag(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		"root": {Username: "root", Password: hashFor(t, "hunter2"), IsAdmin: true},
	}}
	svc := NewUserService(store, &fakeSessions{}, testSecret, bcrypt.MinCost)

	isAdmin, ok, err := svc.Authenticate(context.Background(), "root", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !isAdmin {
		t.Errorf("got ok=%v isAdmin=%v, want both true", ok, isAdmin)
	}
}

func TestLoginBadCredentialsIsBadRequest(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	svc := NewUserService(store, &fakeSessions{}, testSecret, bcrypt.MinCost)

	_, err := svc.Login(context.Background(), "ghost", "pw")

	apiErr, ok := err.(*httperr.Error)
	if !ok {
		t.Fatalf("err = %v, want *httperr.Error", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Can't authenticate!" {
		t.Errorf("got %d %v", apiErr.Status, apiErr.Message)
	}
}

func TestLoginIssuesTokenWithAdminClaim(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		"root": {Username: "root", Password: hashFor(t, "hunter2"), IsAdmin: true},
	}}
	sessions := &fakeSessions{}
	svc := NewUserService(store, sessions, testSecret, bcrypt.MinCost)

	tkn, err := svc.Login(context.Background(), "root", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := token.Parse(testSecret, tkn)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != "root" || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Error("token has no expiry")
	}
	if sessions.saved["root"] != tkn {
		t.Error("token not saved in session store")
	}
}

func TestDeleteDropsSession(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{"bob": {Username: "bob"}}}
	sessions := &fakeSessions{saved: map[string]string{"bob": "live-token"}}
	svc := NewUserService(store, sessions, testSecret, bcrypt.MinCost)

	deleted, err := svc.Delete(context.Background(), "bob")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "bob" {
		t.Fatalf("deleted = %q", deleted)
	}

	if len(sessions.dropped) != 1 || sessions.dropped[0] != "bob" {
		t.Errorf("dropped = %v, want [bob]", sessions.dropped)
	}
	if _, ok := sessions.saved["bob"]; ok {
		t.Error("session survived delete")
	}
}

func TestDeleteAbsentUserLeavesSessionsAlone(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	sessions := &fakeSessions{saved: map[string]string{"bob": "live-token"}}
	svc := NewUserService(store, sessions, testSecret, bcrypt.MinCost)

	deleted, err := svc.Delete(context.Background(), "ghost")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "" {
		t.Fatalf("deleted = %q, want empty sentinel", deleted)
	}
	if len(sessions.dropped) != 0 {
		t.Errorf("dropped = %v, want none", sessions.dropped)
	}
}
