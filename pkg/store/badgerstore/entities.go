package badgerstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

// Buildings

func (s *BadgerStore) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	return listRecords[models.Building](ctx, s.db, []byte(prefixBuilding), nil)
}

func (s *BadgerStore) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	return getRecord[models.Building](ctx, s.db, key(prefixBuilding, id))
}

func (s *BadgerStore) CreateBuilding(ctx context.Context, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixBuilding, building.ID), building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *BadgerStore) UpdateBuilding(ctx context.Context, id string, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, id)
	if err := putRecord(ctx, s.db, key(prefixBuilding, id), building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *BadgerStore) DeleteBuilding(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixBuilding, id))
}

// Floors

func (s *BadgerStore) ListFloors(ctx context.Context) ([]*models.Floor, error) {
	return listRecords[models.Floor](ctx, s.db, []byte(prefixFloor), nil)
}

func (s *BadgerStore) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	return getRecord[models.Floor](ctx, s.db, key(prefixFloor, id))
}

func (s *BadgerStore) FloorsByBuilding(ctx context.Context, buildingID string) ([]*models.Floor, error) {
	return listRecords(ctx, s.db, []byte(prefixFloor), func(f *models.Floor) bool {
		return f.BuildingID == buildingID
	})
}

func (s *BadgerStore) CreateFloor(ctx context.Context, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixFloor, floor.ID), floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *BadgerStore) UpdateFloor(ctx context.Context, id string, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, id)
	if err := putRecord(ctx, s.db, key(prefixFloor, id), floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *BadgerStore) DeleteFloor(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixFloor, id))
}

// Rooms

func (s *BadgerStore) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return listRecords[models.Room](ctx, s.db, []byte(prefixRoom), nil)
}

func (s *BadgerStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return getRecord[models.Room](ctx, s.db, key(prefixRoom, id))
}

func (s *BadgerStore) RoomsByFloor(ctx context.Context, floorID string) ([]*models.Room, error) {
	return listRecords(ctx, s.db, []byte(prefixRoom), func(r *models.Room) bool {
		return r.FloorID == floorID
	})
}

func (s *BadgerStore) RoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	return listRecords(ctx, s.db, []byte(prefixRoom), func(r *models.Room) bool {
		return r.BuildingID == buildingID
	})
}

func (s *BadgerStore) CreateRoom(ctx context.Context, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixRoom, room.ID), room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *BadgerStore) UpdateRoom(ctx context.Context, id string, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, id)
	if err := putRecord(ctx, s.db, key(prefixRoom, id), room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *BadgerStore) DeleteRoom(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixRoom, id))
}

// Staff

func (s *BadgerStore) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return listRecords[models.Staff](ctx, s.db, []byte(prefixStaff), nil)
}

func (s *BadgerStore) GetStaffMember(ctx context.Context, id string) (*models.Staff, error) {
	return getRecord[models.Staff](ctx, s.db, key(prefixStaff, id))
}

func (s *BadgerStore) StaffByBuilding(ctx context.Context, buildingID string) ([]*models.Staff, error) {
	return listRecords(ctx, s.db, []byte(prefixStaff), func(m *models.Staff) bool {
		return m.BuildingID == buildingID
	})
}

func (s *BadgerStore) CreateStaff(ctx context.Context, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixStaff, staff.ID), staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *BadgerStore) UpdateStaff(ctx context.Context, id string, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, id)
	if err := putRecord(ctx, s.db, key(prefixStaff, id), staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *BadgerStore) DeleteStaff(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixStaff, id))
}

// Events

func (s *BadgerStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return listRecords[models.Event](ctx, s.db, []byte(prefixEvent), nil)
}

func (s *BadgerStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return getRecord[models.Event](ctx, s.db, key(prefixEvent, id))
}

func (s *BadgerStore) CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixEvent, event.ID), event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *BadgerStore) UpdateEvent(ctx context.Context, id string, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, id)
	if err := putRecord(ctx, s.db, key(prefixEvent, id), event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *BadgerStore) DeleteEvent(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixEvent, id))
}

// Walkpaths

func (s *BadgerStore) ListWalkpaths(ctx context.Context) ([]*models.Walkpath, error) {
	return listRecords[models.Walkpath](ctx, s.db, []byte(prefixWalkpath), nil)
}

func (s *BadgerStore) GetWalkpath(ctx context.Context, id string) (*models.Walkpath, error) {
	return getRecord[models.Walkpath](ctx, s.db, key(prefixWalkpath, id))
}

func (s *BadgerStore) CreateWalkpath(ctx context.Context, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixWalkpath, path.ID), path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *BadgerStore) UpdateWalkpath(ctx context.Context, id string, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, id)
	if err := putRecord(ctx, s.db, key(prefixWalkpath, id), path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *BadgerStore) DeleteWalkpath(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixWalkpath, id))
}

// Drivepaths

func (s *BadgerStore) ListDrivepaths(ctx context.Context) ([]*models.Drivepath, error) {
	return listRecords[models.Drivepath](ctx, s.db, []byte(prefixDrivepath), nil)
}

func (s *BadgerStore) GetDrivepath(ctx context.Context, id string) (*models.Drivepath, error) {
	return getRecord[models.Drivepath](ctx, s.db, key(prefixDrivepath, id))
}

func (s *BadgerStore) CreateDrivepath(ctx context.Context, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, uuid.New().String())
	if err := putRecord(ctx, s.db, key(prefixDrivepath, path.ID), path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *BadgerStore) UpdateDrivepath(ctx context.Context, id string, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, id)
	if err := putRecord(ctx, s.db, key(prefixDrivepath, id), path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *BadgerStore) DeleteDrivepath(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.db, key(prefixDrivepath, id))
}
