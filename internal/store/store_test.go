package store_test

import (
	"testing"

	"github.com/markopoloparadox/web-crawler/internal/store"
)

func TestResultStore_GetMiss(t *testing.T) {
	s := store.NewResultStore()

	_, ok := s.Get("abc123")
	if ok {
		t.Error("expected miss on empty store")
	}
}

func TestResultStore_PutThenGet(t *testing.T) {
	s := store.NewResultStore()
	s.Put("abc123", []string{"https://w.t", "https://w.t/a"})

	urls, ok := s.Get("abc123")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if len(urls) != 2 {
		t.Errorf("expected 2 urls, got %d", len(urls))
	}
}

func TestResultStore_Size(t *testing.T) {
	s := store.NewResultStore()
	s.Put("a", []string{"x"})
	s.Put("b", []string{"y"})

	if s.Size() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Size())
	}
}
