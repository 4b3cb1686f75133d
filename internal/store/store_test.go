package store

import (
	"sync"
	"testing"

	"github.com/ziadkadry99/homepage/internal/content"
)

func TestStoreEmpty(t *testing.T) {
	s := New()
	if s.Get() != nil {
		t.Error("new store should hold no document")
	}
	if !s.LoadedAt().IsZero() {
		t.Error("new store should have zero LoadedAt")
	}
}

func TestStorePutReplaces(t *testing.T) {
	s := New()
	first := &content.SiteContent{LastUpdate: "May"}
	second := &content.SiteContent{LastUpdate: "June"}

	s.Put(first)
	if s.Get() != first {
		t.Fatal("Get should return the stored document")
	}
	s.Put(second)
	if got := s.Get(); got != second {
		t.Fatalf("Get = %+v, want the latest document", got)
	}
	if first.LastUpdate != "May" {
		t.Error("replacing must not touch the previous document")
	}
	if s.LoadedAt().IsZero() {
		t.Error("LoadedAt should be set after Put")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Put(&content.SiteContent{})
		}()
		go func() {
			defer wg.Done()
			_ = s.Get()
		}()
	}
	wg.Wait()
	if s.Get() == nil {
		t.Error("expected a document after concurrent puts")
	}
}
