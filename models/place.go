package models

const (
	PlaceTravel = "travel"
	PlaceFood   = "food"
	PlaceCafe   = "cafe"
)

func IsPlaceType(t string) bool {
	return t == PlaceTravel || t == PlaceFood || t == PlaceCafe
}

type Place struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type          string  `gorm:"column:type;type:enum('travel','food','cafe');not null" json:"type"`
	Name          string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description   *string `gorm:"column:description;type:varchar(1024)" json:"description"`
	GooglePlaceID *string `gorm:"column:google_place_id;type:varchar(255)" json:"google_place_id"`
	Lat           float64 `gorm:"column:lat;type:decimal(9,6);not null" json:"lat"`
	Lng           float64 `gorm:"column:lng;type:decimal(9,6);not null" json:"lng"`
	Address       *string `gorm:"column:address;type:varchar(512)" json:"address"`
	Phone         *string `gorm:"column:phone;type:varchar(64)" json:"phone"`
	Website       *string `gorm:"column:website;type:varchar(512)" json:"website"`

	// Distance 仅附近查询时填充(km)
	Distance *float64 `gorm:"-" json:"distance,omitempty"`
}

func (Place) TableName() string {
	return "places"
}
