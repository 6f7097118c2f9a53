package badgerstore_test

import (
	"testing"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
	"campusmap/pkg/store/badgerstore"
	"campusmap/pkg/store/storetest"
)

func insertBuilding(name string) models.InsertBuilding {
	return models.InsertBuilding{Name: name, Lat: 14.6, Lng: 121.0}
}

func TestConformance(t *testing.T) {
	storetest.RunConformanceSuite(t, func(t *testing.T) store.Store {
		s, err := badgerstore.New(badgerstore.Config{InMemory: true})
		if err != nil {
			t.Fatalf("badgerstore.New() failed: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := badgerstore.New(badgerstore.Config{Path: dir})
	if err != nil {
		t.Fatalf("badgerstore.New() failed: %v", err)
	}

	created, err := s.CreateBuilding(t.Context(), insertBuilding("Annex"))
	if err != nil {
		t.Fatalf("CreateBuilding() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened, err := badgerstore.New(badgerstore.Config{Path: dir})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetBuilding(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("GetBuilding() after reopen failed: %v", err)
	}
	if got.Name != "Annex" {
		t.Errorf("Name = %q, want Annex", got.Name)
	}
}
