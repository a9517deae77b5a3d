package model

import "time"

const (
	TableName  = "roomrepairs"
	EntityName = "repair"

	FieldID         = "repairid"
	FieldCompanyID  = "companyid"
	FieldHotelID    = "hotelid"
	FieldRoomNumber = "roomnumber"
	FieldRepairDate = "repairdate"
)

type Repair struct {
	ID         int64     `db:"repairid"   generated:"true"`
	CompanyID  int64     `db:"companyid"`
	HotelID    int64     `db:"hotelid"`
	RoomNumber int64     `db:"roomnumber"`
	RepairDate time.Time `db:"repairdate"`
}

const (
	RequestTableName  = "roomrepairrequests"
	RequestEntityName = "repair_request"

	FieldRequestNumber = "requestnumber"
	FieldManagerID     = "managerid"
)

// Request links a repair to the manager who ordered it.
type Request struct {
	RequestNumber int64 `db:"requestnumber" generated:"true"`
	ManagerID     int64 `db:"managerid"`
	RepairID      int64 `db:"repairid"`
}

const (
	CompanyTableName  = "maintenancecompany"
	CompanyEntityName = "maintenance_company"
)

type Company struct {
	ID          int64  `db:"companyid"   generated:"true"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	IsCertified bool   `db:"iscertified"`
}
