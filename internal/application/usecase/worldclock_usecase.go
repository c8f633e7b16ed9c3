package usecase

import (
	"strings"
	"time"
	_ "time/tzdata" // zonas horarias embebidas: no depende de la tzdata del sistema

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// countryTimezones tabla fija de códigos ISO de país a zona horaria IANA.
var countryTimezones = map[string]string{
	"CO": "America/Bogota",
	"MX": "America/Mexico_City",
	"AR": "America/Argentina/Buenos_Aires",
	"BR": "America/Sao_Paulo",
	"PE": "America/Lima",
}

// WorldClockUseCase resuelve la hora actual por código ISO de país.
type WorldClockUseCase struct {
	now func() time.Time
}

// NewWorldClockUseCase construye el caso de uso con el reloj del sistema.
func NewWorldClockUseCase() *WorldClockUseCase {
	return &WorldClockUseCase{now: time.Now}
}

// NewWorldClockUseCaseWithClock permite inyectar el reloj (tests).
func NewWorldClockUseCaseWithClock(now func() time.Time) *WorldClockUseCase {
	return &WorldClockUseCase{now: now}
}

// CurrentTime devuelve la hora actual en la zona del país. El código es
// insensible a mayúsculas; un código fuera de la tabla devuelve ErrNotFound.
func (uc *WorldClockUseCase) CurrentTime(isoCode string) (*dto.CountryTimeResponse, error) {
	iso := strings.ToUpper(isoCode)
	zone, ok := countryTimezones[iso]
	if !ok {
		return nil, domain.ErrNotFound
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &dto.CountryTimeResponse{
		IsoCode:     iso,
		CountryZone: zone,
		Time:        uc.now().In(loc),
	}, nil
}
