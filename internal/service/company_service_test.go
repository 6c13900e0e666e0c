package service

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
)

func TestCompanyUpdateEmptyFieldSetIsBadRequest(t *testing.T) {
	store := &fakeCompanyStore{}
	svc := NewCompanyService(store, &fakePublisher{})

	_, err := svc.Update(context.Background(), "acme", nil)

	apiErr, ok := err.(*httperr.Error)
	if !ok {
		t.Fatalf("err = %v, want *httperr.Error", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "Must update at least one of the following: name, num_employees, description, logo_url" {
		t.Errorf("message = %v", apiErr.Message)
	}
	if store.updateQuery != "" {
		t.Error("store was called despite empty field set")
	}
}

func TestCompanyUpdateBuildsQueryForStore(t *testing.T) {
	store := &fakeCompanyStore{updated: &entity.Company{Handle: "acme"}}
	svc := NewCompanyService(store, &fakePublisher{})

	_, err := svc.Update(context.Background(), "acme", []repository.UpdateField{
		{Column: "name", Value: "Acme 2"},
		{Column: "num_employees", Value: 300},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := "UPDATE companies SET name=$1, num_employees=$2 WHERE handle=$3 RETURNING *"
	if store.updateQuery != want {
		t.Errorf("query = %q, want %q", store.updateQuery, want)
	}
	if !reflect.DeepEqual(store.updateParams, []any{"Acme 2", 300, "acme"}) {
		t.Errorf("params = %v", store.updateParams)
	}
}

func TestCompanyUpdateAbsentRowIsSentinel(t *testing.T) {
	store := &fakeCompanyStore{updated: nil}
	events := &fakePublisher{}
	svc := NewCompanyService(store, events)

	company, err := svc.Update(context.Background(), "ghost", []repository.UpdateField{
		{Column: "name", Value: "x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if company != nil {
		t.Errorf("company = %v, want nil sentinel", company)
	}
	if len(events.events) != 0 {
		t.Error("event published for a no-op update")
	}
}

func TestCompanyAddPublishesCreatedEvent(t *testing.T) {
	events := &fakePublisher{}
	svc := NewCompanyService(&fakeCompanyStore{}, events)

	_, err := svc.Add(context.Background(), &entity.Company{Handle: "acme", Name: "Acme"})
	if err != nil {
		t.Fatal(err)
	}

	want := []publishedEvent{{"company", "created", "acme"}}
	if !reflect.DeepEqual(events.events, want) {
		t.Errorf("events = %v, want %v", events.events, want)
	}
}

func TestCompanyDeletePublishesDeletedEvent(t *testing.T) {
	store := &fakeCompanyStore{companies: map[string]*entity.Company{"acme": {Handle: "acme"}}}
	events := &fakePublisher{}
	svc := NewCompanyService(store, events)

	deleted, err := svc.Delete(context.Background(), "acme")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "acme" {
		t.Errorf("deleted = %q", deleted)
	}

	want := []publishedEvent{{"company", "deleted", "acme"}}
	if !reflect.DeepEqual(events.events, want) {
		t.Errorf("events = %v, want %v", events.events, want)
	}
}

func TestCompanyDeleteAbsentPublishesNothing(t *testing.T) {
	events := &fakePublisher{}
	svc := NewCompanyService(&fakeCompanyStore{}, events)

	deleted, err := svc.Delete(context.Background(), "ghost")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != "" {
		t.Errorf("deleted = %q, want empty sentinel", deleted)
	}
	if len(events.events) != 0 {
		t.Error("event published for absent company")
	}
}

func TestJobUpdateEmptyFieldSetIsBadRequest(t *testing.T) {
	svc := NewJobService(&fakeJobStore{}, &fakePublisher{})

	_, err := svc.Update(context.Background(), 1, nil)

	apiErr, ok := err.(*httperr.Error)
	if !ok {
		t.Fatalf("err = %v, want *httperr.Error", err)
	}
	if apiErr.Message != "Must update at least one of the following: title, salary, equity" {
		t.Errorf("message = %v", apiErr.Message)
	}
}

func TestUserUpdateEmptyFieldSetIsBadRequest(t *testing.T) {
	svc := NewUserService(&fakeUserStore{}, &fakeSessions{}, testSecret, 4)

	_, err := svc.Update(context.Background(), "bob", nil)

	apiErr, ok := err.(*httperr.Error)
	if !ok {
		t.Fatalf("err = %v, want *httperr.Error", err)
	}
	if apiErr.Message != "Must update one of the following: first_name, last_name, email, photo_url" {
		t.Errorf("message = %v", apiErr.Message)
	}
}
