package dto

import (
	"hotel/internal/domains/repair/model"
	"hotel/shared/timezone"
	"time"
)

type PlaceRepairRequest struct {
	HotelID    int64 `validate:"gt=0"`
	RoomNumber int64 `validate:"gt=0"`
	CompanyID  int64 `validate:"gt=0"`
}

// ToModel dates the repair today in the application timezone.
func (r *PlaceRepairRequest) ToModel() model.Repair {
	now := timezone.Now()

	return model.Repair{
		CompanyID:  r.CompanyID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		RepairDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
}
