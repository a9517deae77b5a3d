package model

import "time"

const (
	TableName  = "hotel"
	EntityName = "hotel"

	FieldID              = "hotelid"
	FieldName            = "hotelname"
	FieldLatitude        = "latitude"
	FieldLongitude       = "longitude"
	FieldDateEstablished = "dateestablished"
	FieldManagerUserID   = "manageruserid"
)

type Hotel struct {
	ID              int64      `db:"hotelid"         generated:"true"`
	Name            string     `db:"hotelname"`
	Latitude        float64    `db:"latitude"`
	Longitude       float64    `db:"longitude"`
	DateEstablished *time.Time `db:"dateestablished"`
	ManagerUserID   *int64     `db:"manageruserid"`
}
