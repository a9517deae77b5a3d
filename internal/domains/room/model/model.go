package model

import "time"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelID    = "hotelid"
	FieldRoomNumber = "roomnumber"
	FieldPrice      = "price"
	FieldImageURL   = "imageurl"
)

type Room struct {
	HotelID    int64   `db:"hotelid"`
	RoomNumber int64   `db:"roomnumber"`
	Price      int64   `db:"price"`
	ImageURL   *string `db:"imageurl"`
}

const (
	UpdateLogTableName  = "roomupdateslog"
	UpdateLogEntityName = "room_update_log"

	FieldUpdateNumber = "updatenumber"
	FieldManagerID    = "managerid"
	FieldUpdatedOn    = "updatedon"
)

// UpdateLog is one row of the per-manager room change history.
type UpdateLog struct {
	UpdateNumber int64     `db:"updatenumber" generated:"true"`
	ManagerID    int64     `db:"managerid"`
	HotelID      int64     `db:"hotelid"`
	RoomNumber   int64     `db:"roomnumber"`
	UpdatedOn    time.Time `db:"updatedon"`
}
