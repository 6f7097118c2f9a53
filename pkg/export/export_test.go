package export

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"campusmap/pkg/models"
	"campusmap/pkg/store/memorystore"
)

func seedStore(t *testing.T) *memorystore.MemoryStore {
	t.Helper()

	st := memorystore.New()
	ctx := t.Context()

	b, err := st.CreateBuilding(ctx, models.InsertBuilding{Name: "Library", Lat: 41.0, Lng: 29.0})
	if err != nil {
		t.Fatalf("CreateBuilding: %v", err)
	}
	f, err := st.CreateFloor(ctx, models.InsertFloor{BuildingID: b.ID, Label: "Ground"})
	if err != nil {
		t.Fatalf("CreateFloor: %v", err)
	}
	if _, err := st.CreateRoom(ctx, models.InsertRoom{FloorID: f.ID, Name: "Reading Room"}); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := st.CreateWalkpath(ctx, models.InsertWalkpath{
		Name:   "Main gate to library",
		Points: models.PointList{{Lat: 41.0, Lng: 29.0}, {Lat: 41.001, Lng: 29.001}},
	}); err != nil {
		t.Fatalf("CreateWalkpath: %v", err)
	}
	if _, err := st.CreateSetting(ctx, models.InsertSetting{Key: "map.center", Value: "41.0,29.0"}); err != nil {
		t.Fatalf("CreateSetting: %v", err)
	}

	return st
}

func TestCollect(t *testing.T) {
	st := seedStore(t)
	t.Cleanup(func() { _ = st.Close() })

	snap, err := NewExporter(st).Collect(t.Context())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if snap.ExportedAt.IsZero() {
		t.Error("expected ExportedAt to be set")
	}
	if len(snap.Buildings) != 1 {
		t.Errorf("expected 1 building, got %d", len(snap.Buildings))
	}
	if len(snap.Floors) != 1 || len(snap.Rooms) != 1 {
		t.Errorf("expected 1 floor and 1 room, got %d and %d", len(snap.Floors), len(snap.Rooms))
	}
	if len(snap.Walkpaths) != 1 || len(snap.Settings) != 1 {
		t.Errorf("expected 1 walkpath and 1 setting, got %d and %d", len(snap.Walkpaths), len(snap.Settings))
	}
	if got := snap.EntityCount(); got != 5 {
		t.Errorf("expected entity count 5, got %d", got)
	}
}

func TestWriteFile(t *testing.T) {
	st := seedStore(t)
	t.Cleanup(func() { _ = st.Close() })

	path := filepath.Join(t.TempDir(), "export.json")
	snap, err := NewExporter(st).WriteFile(t.Context(), path)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if snap.EntityCount() == 0 {
		t.Fatal("expected a non-empty snapshot")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal export file: %v", err)
	}
	if len(decoded.Buildings) != 1 || decoded.Buildings[0].Name != "Library" {
		t.Errorf("unexpected buildings in export file: %+v", decoded.Buildings)
	}
	if decoded.ExportedAt.IsZero() {
		t.Error("expected exported_at to survive the round trip")
	}
}

func TestWriteFileEmptyStore(t *testing.T) {
	st := memorystore.New()
	t.Cleanup(func() { _ = st.Close() })

	path := filepath.Join(t.TempDir(), "export.json")
	snap, err := NewExporter(st).WriteFile(t.Context(), path)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if snap.EntityCount() != 0 {
		t.Errorf("expected empty snapshot, got %d entities", snap.EntityCount())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected export file to exist: %v", err)
	}
}

type fakeS3 struct {
	bucket string
	key    string
	body   []byte
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.bucket = *params.Bucket
	f.key = *params.Key

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body

	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	st := seedStore(t)
	t.Cleanup(func() { _ = st.Close() })

	snap, err := NewExporter(st).Collect(t.Context())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	snap.ExportedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	fake := &fakeS3{}
	uploader := NewS3Uploader(fake, "campus-exports", "backups")

	key, err := uploader.Upload(t.Context(), snap)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if want := "backups/campusmap-export-20260314-093000.json"; key != want {
		t.Errorf("expected key %q, got %q", want, key)
	}
	if fake.bucket != "campus-exports" {
		t.Errorf("expected bucket campus-exports, got %q", fake.bucket)
	}
	if fake.key != key {
		t.Errorf("PutObject key %q does not match returned key %q", fake.key, key)
	}

	var decoded Snapshot
	if err := json.Unmarshal(fake.body, &decoded); err != nil {
		t.Fatalf("unmarshal uploaded body: %v", err)
	}
	if len(decoded.Buildings) != 1 {
		t.Errorf("expected 1 building in uploaded snapshot, got %d", len(decoded.Buildings))
	}
}

func TestObjectKeyWithoutPrefix(t *testing.T) {
	uploader := NewS3Uploader(&fakeS3{}, "campus-exports", "")
	key := uploader.ObjectKey(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	if strings.HasPrefix(key, "/") {
		t.Errorf("expected key without leading slash, got %q", key)
	}
	if want := "campusmap-export-20260102-030405.json"; key != want {
		t.Errorf("expected key %q, got %q", want, key)
	}
}
