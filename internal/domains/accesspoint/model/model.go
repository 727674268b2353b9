package model

const (
	EntityName = "accesspoint"

	FieldID     = "nfcReaderId"
	FieldRoomID = "roomId"
)

// AccessPoint is an NFC reader mounted in a room.
type AccessPoint struct {
	ID     int64 `db:"nfcreaderid"`
	RoomID int64 `db:"roomid"`
}

func (a AccessPoint) Columns() ([]string, []any) {
	return []string{FieldRoomID}, []any{a.RoomID}
}
