package directory

import (
	"context"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// Directory defines the interface for the station-directory client.
type Directory interface {
	SearchStations(ctx context.Context, filters models.SearchFilters) SearchResult
	GetStationByID(ctx context.Context, id int) (*models.ChargingStation, error)
	GetConnectionTypes(ctx context.Context) ([]models.ConnectionType, error)
	GetOperators(ctx context.Context) ([]models.Operator, error)
	GetCountries(ctx context.Context) ([]models.Country, error)
	GetUsageTypes(ctx context.Context) ([]models.UsageType, error)
	GetStatusTypes(ctx context.Context) ([]models.StatusType, error)
}
