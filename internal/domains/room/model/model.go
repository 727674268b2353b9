package model

import "link/shared/statement"

const (
	EntityName = "room"

	FieldID             = "roomId"
	FieldName           = "roomName"
	FieldParentRoomList = "parentRoomList"
	FieldBuildingID     = "buildingId"
)

type Room struct {
	ID             int64   `db:"roomid"`
	Name           string  `db:"roomname"`
	ParentRoomList *string `db:"parentroomlist"`
	BuildingID     int64   `db:"buildingid"`
}

func (r Room) Columns() ([]string, []any) {
	return []string{FieldName, FieldParentRoomList, FieldBuildingID},
		[]any{r.Name, statement.Nullable(r.ParentRoomList), r.BuildingID}
}

type Patch struct {
	Name           *string
	ParentRoomList *string
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldName, FieldParentRoomList},
		[]any{statement.Optional(p.Name), statement.Optional(p.ParentRoomList)}
}
