package model

const (
	EntityName = "tpaxroom"

	FieldTPAID  = "tpaId"
	FieldRoomID = "roomId"
)

// TPARoom links a TPA to one room it opens.
type TPARoom struct {
	TPAID  int64 `db:"tpaid"`
	RoomID int64 `db:"roomid"`
}

func (t TPARoom) Columns() ([]string, []any) {
	return []string{FieldTPAID, FieldRoomID}, []any{t.TPAID, t.RoomID}
}
