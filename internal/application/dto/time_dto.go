package dto

import "time"

// CountryTimeResponse hora actual en la zona horaria de un país.
type CountryTimeResponse struct {
	IsoCode     string    `json:"iso_code"`
	CountryZone string    `json:"country_zone"`
	Time        time.Time `json:"time"`
}
