package appointment

import "github.com/kenzychew/pet-app-sub000/internal/httperr"

// The service catalog is a closed, fixed mapping. Duration is derived from
// the service type, never caller-supplied.
const (
	ServiceBasic = "basic"
	ServiceFull  = "full"
)

var serviceDurations = map[string]int{
	ServiceBasic: 60,
	ServiceFull:  120,
}

var serviceBaseRates = map[string]float64{
	ServiceBasic: 60,
	ServiceFull:  120,
}

func Duration(serviceType string) (int, error) {
	d, ok := serviceDurations[serviceType]
	if !ok {
		return 0, httperr.ErrValidation("invalid_service_type")
	}
	return d, nil
}

func BaseRate(serviceType string) float64 {
	return serviceBaseRates[serviceType]
}
