package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"region-catalog-go/internal/catalog"
	"region-catalog-go/pkg/model"
)

// testRegions is a small catalog exercising both availability variants,
// every provider, and a pair of exactly co-located regions for tie-breaks.
func testRegions() []model.Region {
	return []model.Region{
		{
			ID: "aws-east", Name: "US East", Provider: model.ProviderAWS,
			Latitude: 38.95, Longitude: -77.45,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute: model.BooleanAvailability(true),
				model.ServiceCDN:     model.BooleanAvailability(true),
				model.ServiceVault: model.TieredAvailability(
					model.VaultEntry{Edition: model.EditionFoundation, Tier: model.TierCore},
					model.VaultEntry{Edition: model.EditionAdvanced, Tier: model.TierCore},
				),
			},
		},
		{
			ID: "aws-west", Name: "US West", Provider: model.ProviderAWS,
			Latitude: 45.84, Longitude: -119.7,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute: model.BooleanAvailability(true),
				model.ServiceCDN:     model.BooleanAvailability(false),
				model.ServiceVault: model.TieredAvailability(
					model.VaultEntry{Edition: model.EditionFoundation, Tier: model.TierNonCore},
				),
			},
		},
		{
			ID: "azure-east", Name: "East US", Provider: model.ProviderAzure,
			Latitude: 36.67, Longitude: -78.37,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute: model.BooleanAvailability(true),
				model.ServiceVault: model.TieredAvailability(
					model.VaultEntry{Edition: model.EditionFoundation, Tier: model.TierCore},
				),
			},
		},
		{
			ID: "azure-europe", Name: "West Europe", Provider: model.ProviderAzure,
			Latitude: 52.37, Longitude: 4.9,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute:    model.BooleanAvailability(true),
				model.ServiceMonitoring: model.BooleanAvailability(true),
				// No single entry is both Foundation and Core; relevant to
				// the independent tier/edition predicate tests.
				model.ServiceVault: model.TieredAvailability(
					model.VaultEntry{Edition: model.EditionFoundation, Tier: model.TierNonCore},
					model.VaultEntry{Edition: model.EditionAdvanced, Tier: model.TierCore},
				),
			},
		},
		{
			ID: "aws-tie-b", Name: "Tie Site B", Provider: model.ProviderAWS,
			Latitude: 10, Longitude: 10,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute: model.BooleanAvailability(true),
			},
		},
		{
			ID: "aws-tie-a", Name: "Tie Site A", Provider: model.ProviderAWS,
			Latitude: 10, Longitude: 10,
			Services: map[string]model.ServiceAvailability{
				model.ServiceCompute: model.BooleanAvailability(true),
			},
		},
	}
}

func testService(t *testing.T) *QueryService {
	t.Helper()
	cat, err := catalog.New(testRegions())
	require.NoError(t, err)
	return NewQueryService(cat)
}
