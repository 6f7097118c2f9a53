package storetest

import (
	"context"
	"errors"
	"testing"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// StoreFactory creates a fresh, empty store for one test.
type StoreFactory func(t *testing.T) store.Store

// RunConformanceSuite runs every behavioral contract test against the store
// produced by the factory.
func RunConformanceSuite(t *testing.T, factory StoreFactory) {
	t.Run("BuildingDefaults", func(t *testing.T) { testBuildingDefaults(t, factory) })
	t.Run("EventDefaults", func(t *testing.T) { testEventDefaults(t, factory) })
	t.Run("GetMissingReturnsNotFound", func(t *testing.T) { testGetMissing(t, factory) })
	t.Run("UpdateReplacesRecord", func(t *testing.T) { testUpdateReplaces(t, factory) })
	t.Run("UpdateMissingUpserts", func(t *testing.T) { testUpdateMissingUpserts(t, factory) })
	t.Run("DeleteThenGet", func(t *testing.T) { testDeleteThenGet(t, factory) })
	t.Run("DeleteMissingSucceeds", func(t *testing.T) { testDeleteMissing(t, factory) })
	t.Run("ParentScopedQueries", func(t *testing.T) { testParentScoped(t, factory) })
	t.Run("WalkpathPointsRoundTrip", func(t *testing.T) { testWalkpathPoints(t, factory) })
	t.Run("Settings", func(t *testing.T) { testSettings(t, factory) })
	t.Run("AdminUsers", func(t *testing.T) { testAdminUsers(t, factory) })
}

func testBuildingDefaults(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	created, err := s.CreateBuilding(ctx, models.InsertBuilding{Name: "Library", Lat: 14.6, Lng: 121.0})
	if err != nil {
		t.Fatalf("CreateBuilding() failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Icon != models.DefaultBuildingIcon {
		t.Errorf("Icon = %q, want %q", created.Icon, models.DefaultBuildingIcon)
	}

	got, err := s.GetBuilding(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBuilding() failed: %v", err)
	}
	if *got != *created {
		t.Errorf("GetBuilding() = %+v, want %+v", got, created)
	}

	// An explicit icon is kept as-is.
	withIcon, err := s.CreateBuilding(ctx, models.InsertBuilding{Name: "Gym", Icon: "dumbbell"})
	if err != nil {
		t.Fatalf("CreateBuilding() failed: %v", err)
	}
	if withIcon.Icon != "dumbbell" {
		t.Errorf("Icon = %q, want %q", withIcon.Icon, "dumbbell")
	}
}

func testEventDefaults(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, models.InsertEvent{Title: "Orientation"})
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	if created.Category != models.DefaultEventCategory {
		t.Errorf("Category = %q, want %q", created.Category, models.DefaultEventCategory)
	}

	got, err := s.GetEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEvent() failed: %v", err)
	}
	if got.Category != models.DefaultEventCategory || got.Title != "Orientation" {
		t.Errorf("GetEvent() = %+v", got)
	}
}

func testGetMissing(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	if _, err := s.GetBuilding(ctx, "no-such-id"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetBuilding(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetRoom(ctx, "no-such-id"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetRoom(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetSetting(ctx, "no-such-key"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetSetting(missing) error = %v, want ErrNotFound", err)
	}
}

func testUpdateReplaces(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	created, err := s.CreateBuilding(ctx, models.InsertBuilding{Name: "Old Hall", Lat: 1, Lng: 2, Icon: "legacy"})
	if err != nil {
		t.Fatalf("CreateBuilding() failed: %v", err)
	}

	// Full replacement: unspecified fields fall back to defaults, nothing
	// from the prior version survives except the id.
	updated, err := s.UpdateBuilding(ctx, created.ID, models.InsertBuilding{Name: "New Hall"})
	if err != nil {
		t.Fatalf("UpdateBuilding() failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %q -> %q", created.ID, updated.ID)
	}
	if updated.Icon != models.DefaultBuildingIcon {
		t.Errorf("Icon = %q, want default re-applied", updated.Icon)
	}

	got, err := s.GetBuilding(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBuilding() failed: %v", err)
	}
	if got.Name != "New Hall" || got.Lat != 0 || got.Lng != 0 || got.Icon != models.DefaultBuildingIcon {
		t.Errorf("GetBuilding() after update = %+v", got)
	}
}

func testUpdateMissingUpserts(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	// Updates do not check prior existence: writing to an unknown id stores
	// the record at that id.
	updated, err := s.UpdateStaff(ctx, "adopted-id", models.InsertStaff{Name: "Dr. Reyes", Role: "Dean"})
	if err != nil {
		t.Fatalf("UpdateStaff() failed: %v", err)
	}
	if updated.ID != "adopted-id" {
		t.Errorf("ID = %q, want adopted-id", updated.ID)
	}

	got, err := s.GetStaffMember(ctx, "adopted-id")
	if err != nil {
		t.Fatalf("GetStaffMember() failed: %v", err)
	}
	if got.Name != "Dr. Reyes" {
		t.Errorf("Name = %q, want Dr. Reyes", got.Name)
	}
}

func testDeleteThenGet(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, models.InsertEvent{Title: "Fair"})
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	if err := s.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEvent() failed: %v", err)
	}
	if _, err := s.GetEvent(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetEvent(deleted) error = %v, want ErrNotFound", err)
	}
}

func testDeleteMissing(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	// Deleting an id that never existed reports success.
	if err := s.DeleteBuilding(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteBuilding(missing) = %v, want nil", err)
	}
	if err := s.DeleteWalkpath(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteWalkpath(missing) = %v, want nil", err)
	}
}

func testParentScoped(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	building, err := s.CreateBuilding(ctx, models.InsertBuilding{Name: "Science Wing"})
	if err != nil {
		t.Fatalf("CreateBuilding() failed: %v", err)
	}

	// Empty, not absent, when nothing matches.
	floors, err := s.FloorsByBuilding(ctx, building.ID)
	if err != nil {
		t.Fatalf("FloorsByBuilding() failed: %v", err)
	}
	if floors == nil || len(floors) != 0 {
		t.Errorf("FloorsByBuilding(empty) = %v, want empty slice", floors)
	}

	floor, err := s.CreateFloor(ctx, models.InsertFloor{BuildingID: building.ID, Level: 2, Label: "2F"})
	if err != nil {
		t.Fatalf("CreateFloor() failed: %v", err)
	}
	if _, err := s.CreateFloor(ctx, models.InsertFloor{BuildingID: "other-building", Level: 1}); err != nil {
		t.Fatalf("CreateFloor() failed: %v", err)
	}

	floors, err = s.FloorsByBuilding(ctx, building.ID)
	if err != nil {
		t.Fatalf("FloorsByBuilding() failed: %v", err)
	}
	if len(floors) != 1 || floors[0].ID != floor.ID {
		t.Errorf("FloorsByBuilding() = %+v, want exactly the created floor", floors)
	}

	room, err := s.CreateRoom(ctx, models.InsertRoom{FloorID: floor.ID, BuildingID: building.ID, Name: "201"})
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	byFloor, err := s.RoomsByFloor(ctx, floor.ID)
	if err != nil {
		t.Fatalf("RoomsByFloor() failed: %v", err)
	}
	if len(byFloor) != 1 || byFloor[0].ID != room.ID {
		t.Errorf("RoomsByFloor() = %+v", byFloor)
	}

	byBuilding, err := s.RoomsByBuilding(ctx, building.ID)
	if err != nil {
		t.Fatalf("RoomsByBuilding() failed: %v", err)
	}
	if len(byBuilding) != 1 {
		t.Errorf("RoomsByBuilding() = %+v", byBuilding)
	}

	staff, err := s.CreateStaff(ctx, models.InsertStaff{BuildingID: building.ID, Name: "A. Cruz", Role: "Registrar"})
	if err != nil {
		t.Fatalf("CreateStaff() failed: %v", err)
	}
	byStaff, err := s.StaffByBuilding(ctx, building.ID)
	if err != nil {
		t.Fatalf("StaffByBuilding() failed: %v", err)
	}
	if len(byStaff) != 1 || byStaff[0].ID != staff.ID {
		t.Errorf("StaffByBuilding() = %+v", byStaff)
	}
}

func testWalkpathPoints(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	points := models.PointList{{Lat: 14.6091, Lng: 121.0223}, {Lat: 14.6095, Lng: 121.0230}}
	created, err := s.CreateWalkpath(ctx, models.InsertWalkpath{Name: "Main Gate to Library", Points: points})
	if err != nil {
		t.Fatalf("CreateWalkpath() failed: %v", err)
	}

	got, err := s.GetWalkpath(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetWalkpath() failed: %v", err)
	}
	if len(got.Points) != 2 || got.Points[0] != points[0] || got.Points[1] != points[1] {
		t.Errorf("Points = %+v, want %+v", got.Points, points)
	}
}

func testSettings(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	created, err := s.CreateSetting(ctx, models.InsertSetting{Key: "map.center", Value: "14.6,121.0", Description: "initial viewport"})
	if err != nil {
		t.Fatalf("CreateSetting() failed: %v", err)
	}
	if created.Key != "map.center" {
		t.Errorf("Key = %q", created.Key)
	}

	if _, err := s.CreateSetting(ctx, models.InsertSetting{Key: "map.center", Value: "0,0"}); !errors.Is(err, models.ErrDuplicateSetting) {
		t.Errorf("CreateSetting(duplicate) error = %v, want ErrDuplicateSetting", err)
	}

	// Updating an unknown key is a no-op error, not a create.
	if _, err := s.UpdateSetting(ctx, "map.zoom", "17"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UpdateSetting(unknown) error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetSetting(ctx, "map.zoom"); !errors.Is(err, models.ErrNotFound) {
		t.Error("UpdateSetting(unknown) must not create the setting")
	}

	updated, err := s.UpdateSetting(ctx, "map.center", "15.0,120.5")
	if err != nil {
		t.Fatalf("UpdateSetting() failed: %v", err)
	}
	if updated.Value != "15.0,120.5" {
		t.Errorf("Value = %q", updated.Value)
	}
	if updated.Description != "initial viewport" {
		t.Errorf("Description changed on value update: %q", updated.Description)
	}

	settings, err := s.ListSettings(ctx)
	if err != nil {
		t.Fatalf("ListSettings() failed: %v", err)
	}
	if len(settings) != 1 {
		t.Errorf("ListSettings() = %d entries, want 1", len(settings))
	}
}

func testAdminUsers(t *testing.T, factory StoreFactory) {
	s := factory(t)
	ctx := context.Background()

	hash, err := models.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}

	created, err := s.CreateAdmin(ctx, models.InsertAdminUser{Username: "admin", PasswordHash: hash})
	if err != nil {
		t.Fatalf("CreateAdmin() failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}

	if _, err := s.CreateAdmin(ctx, models.InsertAdminUser{Username: "admin", PasswordHash: hash}); !errors.Is(err, models.ErrDuplicateAdmin) {
		t.Errorf("CreateAdmin(duplicate) error = %v, want ErrDuplicateAdmin", err)
	}

	got, err := s.AdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("AdminByUsername() failed: %v", err)
	}
	if !got.CheckPassword("correct horse battery staple") {
		t.Error("stored hash does not verify")
	}
	if got.CheckPassword("wrong") {
		t.Error("wrong password must not verify")
	}

	if _, err := s.AdminByUsername(ctx, "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("AdminByUsername(missing) error = %v, want ErrNotFound", err)
	}

	if _, err := s.CreateAdmin(ctx, models.InsertAdminUser{Username: "auditor", PasswordHash: hash}); err != nil {
		t.Fatalf("CreateAdmin(auditor) failed: %v", err)
	}
	admins, err := s.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins() failed: %v", err)
	}
	if len(admins) != 2 {
		t.Errorf("ListAdmins() returned %d accounts, want 2", len(admins))
	}
}
