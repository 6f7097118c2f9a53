package memorystore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

// Buildings

func (s *MemoryStore) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	return s.buildings.list(nil), nil
}

func (s *MemoryStore) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	return s.buildings.get(id)
}

func (s *MemoryStore) CreateBuilding(ctx context.Context, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, uuid.New().String())
	s.buildings.put(building.ID, *building)
	return building, nil
}

func (s *MemoryStore) UpdateBuilding(ctx context.Context, id string, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, id)
	s.buildings.put(id, *building)
	return building, nil
}

func (s *MemoryStore) DeleteBuilding(ctx context.Context, id string) error {
	s.buildings.delete(id)
	return nil
}

// Floors

func (s *MemoryStore) ListFloors(ctx context.Context) ([]*models.Floor, error) {
	return s.floors.list(nil), nil
}

func (s *MemoryStore) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	return s.floors.get(id)
}

func (s *MemoryStore) FloorsByBuilding(ctx context.Context, buildingID string) ([]*models.Floor, error) {
	return s.floors.list(func(f models.Floor) bool { return f.BuildingID == buildingID }), nil
}

func (s *MemoryStore) CreateFloor(ctx context.Context, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, uuid.New().String())
	s.floors.put(floor.ID, *floor)
	return floor, nil
}

func (s *MemoryStore) UpdateFloor(ctx context.Context, id string, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, id)
	s.floors.put(id, *floor)
	return floor, nil
}

func (s *MemoryStore) DeleteFloor(ctx context.Context, id string) error {
	s.floors.delete(id)
	return nil
}

// Rooms

func (s *MemoryStore) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.rooms.list(nil), nil
}

func (s *MemoryStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.rooms.get(id)
}

func (s *MemoryStore) RoomsByFloor(ctx context.Context, floorID string) ([]*models.Room, error) {
	return s.rooms.list(func(r models.Room) bool { return r.FloorID == floorID }), nil
}

func (s *MemoryStore) RoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	return s.rooms.list(func(r models.Room) bool { return r.BuildingID == buildingID }), nil
}

func (s *MemoryStore) CreateRoom(ctx context.Context, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, uuid.New().String())
	s.rooms.put(room.ID, *room)
	return room, nil
}

func (s *MemoryStore) UpdateRoom(ctx context.Context, id string, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, id)
	s.rooms.put(id, *room)
	return room, nil
}

func (s *MemoryStore) DeleteRoom(ctx context.Context, id string) error {
	s.rooms.delete(id)
	return nil
}

// Staff

func (s *MemoryStore) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.staff.list(nil), nil
}

func (s *MemoryStore) GetStaffMember(ctx context.Context, id string) (*models.Staff, error) {
	return s.staff.get(id)
}

func (s *MemoryStore) StaffByBuilding(ctx context.Context, buildingID string) ([]*models.Staff, error) {
	return s.staff.list(func(m models.Staff) bool { return m.BuildingID == buildingID }), nil
}

func (s *MemoryStore) CreateStaff(ctx context.Context, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, uuid.New().String())
	s.staff.put(staff.ID, *staff)
	return staff, nil
}

func (s *MemoryStore) UpdateStaff(ctx context.Context, id string, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, id)
	s.staff.put(id, *staff)
	return staff, nil
}

func (s *MemoryStore) DeleteStaff(ctx context.Context, id string) error {
	s.staff.delete(id)
	return nil
}

// Events

func (s *MemoryStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.events.list(nil), nil
}

func (s *MemoryStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.events.get(id)
}

func (s *MemoryStore) CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, uuid.New().String())
	s.events.put(event.ID, *event)
	return event, nil
}

func (s *MemoryStore) UpdateEvent(ctx context.Context, id string, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, id)
	s.events.put(id, *event)
	return event, nil
}

func (s *MemoryStore) DeleteEvent(ctx context.Context, id string) error {
	s.events.delete(id)
	return nil
}

// Walkpaths

func (s *MemoryStore) ListWalkpaths(ctx context.Context) ([]*models.Walkpath, error) {
	return s.walkpaths.list(nil), nil
}

func (s *MemoryStore) GetWalkpath(ctx context.Context, id string) (*models.Walkpath, error) {
	return s.walkpaths.get(id)
}

func (s *MemoryStore) CreateWalkpath(ctx context.Context, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, uuid.New().String())
	s.walkpaths.put(path.ID, *path)
	return path, nil
}

func (s *MemoryStore) UpdateWalkpath(ctx context.Context, id string, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, id)
	s.walkpaths.put(id, *path)
	return path, nil
}

func (s *MemoryStore) DeleteWalkpath(ctx context.Context, id string) error {
	s.walkpaths.delete(id)
	return nil
}

// Drivepaths

func (s *MemoryStore) ListDrivepaths(ctx context.Context) ([]*models.Drivepath, error) {
	return s.drivepaths.list(nil), nil
}

func (s *MemoryStore) GetDrivepath(ctx context.Context, id string) (*models.Drivepath, error) {
	return s.drivepaths.get(id)
}

func (s *MemoryStore) CreateDrivepath(ctx context.Context, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, uuid.New().String())
	s.drivepaths.put(path.ID, *path)
	return path, nil
}

func (s *MemoryStore) UpdateDrivepath(ctx context.Context, id string, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, id)
	s.drivepaths.put(id, *path)
	return path, nil
}

func (s *MemoryStore) DeleteDrivepath(ctx context.Context, id string) error {
	s.drivepaths.delete(id)
	return nil
}

// Admin users, keyed by username.

func (s *MemoryStore) ListAdmins(ctx context.Context) ([]*models.AdminUser, error) {
	return s.admins.list(nil), nil
}

func (s *MemoryStore) AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return s.admins.get(username)
}

func (s *MemoryStore) CreateAdmin(ctx context.Context, in models.InsertAdminUser) (*models.AdminUser, error) {
	admin := models.NewAdminUser(in, uuid.New().String())
	if err := s.admins.putIfAbsent(admin.Username, *admin, models.ErrDuplicateAdmin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Settings, keyed by setting key.

func (s *MemoryStore) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return s.settings.list(nil), nil
}

func (s *MemoryStore) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	return s.settings.get(key)
}

func (s *MemoryStore) CreateSetting(ctx context.Context, in models.InsertSetting) (*models.Setting, error) {
	setting := models.NewSetting(in)
	if err := s.settings.putIfAbsent(setting.Key, *setting, models.ErrDuplicateSetting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *MemoryStore) UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	setting, err := s.settings.get(key)
	if err != nil {
		return nil, err
	}
	setting.Value = value
	s.settings.put(key, *setting)
	return setting, nil
}
