package dto

import (
	"hotel/internal/domains/hotel/model"
	"hotel/shared"
)

// NearbyRequest is the caller's position in the same plane as Hotel.latitude
// and Hotel.longitude. Values are not bounded to geographic degrees.
type NearbyRequest struct {
	Latitude  float64
	Longitude float64
}

type HotelResponse struct {
	ID       int64
	Name     string
	Distance float64
}

func (r *HotelResponse) FromModel(model model.Hotel, from NearbyRequest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Distance = shared.Distance(from.Latitude, from.Longitude, model.Latitude, model.Longitude)
}
