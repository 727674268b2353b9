package model

const (
	EntityName = "tpa"

	FieldID = "tpaId"
)

// TPA is a temporary physical access grant. Rooms are attached through
// tpaxroom.
type TPA struct {
	ID int64 `db:"tpaid"`
}
