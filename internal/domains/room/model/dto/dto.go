package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"
)

type AvailableRoomsRequest struct {
	HotelID int64     `validate:"gt=0"`
	Date    time.Time `validate:"required"`
}

type RoomResponse struct {
	RoomNumber int64
	Price      int64
	ImageURL   string
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price
	r.ImageURL = constant.Null

	if model.ImageURL != nil {
		r.ImageURL = *model.ImageURL
	}
}

// UpdateRoomRequest changes exactly one of price or image url on a room.
type UpdateRoomRequest struct {
	HotelID    int64   `validate:"gt=0"`
	RoomNumber int64   `validate:"gt=0"`
	Price      *int64  `db:"price"    validate:"omitempty,gte=0"`
	ImageURL   *string `db:"imageurl" validate:"omitempty,url,max=400"`
}

func (r *UpdateRoomRequest) ToLogModel(managerID int64) model.UpdateLog {
	return model.UpdateLog{
		ManagerID:  managerID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		UpdatedOn:  timezone.Now(),
	}
}
