package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := New(0, 0)
	got, err := c.Bytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestBytesTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 100))
	}))
	defer srv.Close()

	c := New(0, 10)
	_, err := c.Bytes(context.Background(), srv.URL)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v, want ErrTooLarge", err)
	}
}

func TestBytesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(0, 0)
	_, err := c.Bytes(context.Background(), srv.URL)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("got %v, want ErrStatus", err)
	}
}

func TestJSONGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"x","count":3}`))
	}))
	defer srv.Close()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	c := New(0, 0)
	got, err := JSON[payload](context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestJSONIntoInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	c := New(0, 0)
	var dst map[string]any
	if err := c.JSONInto(context.Background(), srv.URL, &dst); err == nil {
		t.Fatal("JSON invalide : want error, got nil")
	}
}
