package dto

import (
	apModel "link/internal/domains/accesspoint/model"
	"link/internal/domains/room/model"
	"link/shared"
)

type CreateRoomRequest struct {
	Name           string  `json:"room_name"        validate:"required,notblank,max=255"`
	ParentRoomList *string `json:"parent_room_list" validate:"omitempty,max=1024"`
	BuildingID     int64   `json:"building_id"      validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		Name:           c.Name,
		ParentRoomList: c.ParentRoomList,
		BuildingID:     c.BuildingID,
	}
}

type UpdateRoomRequest struct {
	Name           *string `json:"room_name"        validate:"omitempty,max=255"`
	ParentRoomList *string `json:"parent_room_list" validate:"omitempty,max=1024"`
}

func (u *UpdateRoomRequest) ToPatch() model.Patch {
	return model.Patch{
		Name:           u.Name,
		ParentRoomList: u.ParentRoomList,
	}
}

type RoomResponse struct {
	ID             int64   `json:"room_id"`
	Name           string  `json:"room_name"`
	ParentRoomList *string `json:"parent_room_list"`
	BuildingID     int64   `json:"building_id"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.ParentRoomList = model.ParentRoomList
	r.BuildingID = model.BuildingID
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AccessPointResponse struct {
	ID     int64 `json:"nfc_reader_id"`
	RoomID int64 `json:"room_id"`
}

func (r *AccessPointResponse) FromModel(model apModel.AccessPoint) {
	r.ID = model.ID
	r.RoomID = model.RoomID
}

func AccessPointsFromModels(models []apModel.AccessPoint) []AccessPointResponse {
	res := make([]AccessPointResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
