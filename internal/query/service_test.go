package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"region-catalog-go/pkg/model"
)

func TestNearest_DefaultLimitFromDC(t *testing.T) {
	svc := testService(t)

	// Washington DC area, no filters: default limit, nearest first.
	resp, perr := svc.Nearest(params("lat", "38.9", "lng", "-77.0"))
	require.Nil(t, perr)
	assert.Equal(t, DefaultLimit, resp.Query.Limit)
	require.Len(t, resp.Results, 5)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, "aws-east", resp.Results[0].Region.ID)
	assert.Equal(t, "azure-east", resp.Results[1].Region.ID)

	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i].Distance.Km, resp.Results[i-1].Distance.Km,
			"results must be ordered by ascending km")
	}
}

func TestNearest_DualUnitDistances(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "38.9", "lng", "-77.0", "limit", "1"))
	require.Nil(t, perr)
	require.Len(t, resp.Results, 1)

	d := resp.Results[0].Distance
	raw := Kilometers(38.9, -77.0, 38.95, -77.45)
	assert.Equal(t, Round2(raw), d.Km)
	// Miles are derived from the same unrounded km value, not from the
	// rounded one.
	assert.Equal(t, Round2(Miles(raw)), d.Miles)
}

func TestNearest_ZeroDistance(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "38.95", "lng", "-77.45", "limit", "1"))
	require.Nil(t, perr)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "aws-east", resp.Results[0].Region.ID)
	assert.Equal(t, 0.0, resp.Results[0].Distance.Km)
	assert.Equal(t, 0.0, resp.Results[0].Distance.Miles)
}

func TestNearest_VaultTierProviderFilter(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params(
		"lat", "38.9", "lng", "-77.0",
		"service", model.ServiceVault, "tier", "Core", "provider", "AWS",
	))
	require.Nil(t, perr)
	require.NotEmpty(t, resp.Results)
	for _, res := range resp.Results {
		assert.Equal(t, model.ProviderAWS, res.Region.Provider)
		found := false
		for _, e := range res.Region.VaultEntries() {
			if e.Tier == model.TierCore {
				found = true
			}
		}
		assert.True(t, found, "region %s must offer a Core vault entry", res.Region.ID)
	}
}

func TestNearest_UnlimitedSentinel(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "50", "lng", "0", "limit", "0", "provider", "Azure"))
	require.Nil(t, perr)
	assert.Equal(t, 0, resp.Query.Limit)
	assert.Equal(t, 2, resp.Count, "every Azure region, no truncation")
	assert.Equal(t, "azure-europe", resp.Results[0].Region.ID)
	assert.Equal(t, "azure-east", resp.Results[1].Region.ID)
}

func TestNearest_ZeroMatchesIsNotAnError(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "0", "lng", "0", "provider", "Azure", "service", model.ServiceCDN))
	require.Nil(t, perr)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestNearest_TieBreakAtEqualDistance(t *testing.T) {
	svc := testService(t)

	// Query from a point equidistant to the two co-located tie sites; the
	// lexicographically smaller id wins.
	resp, perr := svc.Nearest(params("lat", "10", "lng", "10", "limit", "2"))
	require.Nil(t, perr)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "aws-tie-a", resp.Results[0].Region.ID)
	assert.Equal(t, "aws-tie-b", resp.Results[1].Region.ID)
	assert.Equal(t, resp.Results[0].Distance.Km, resp.Results[1].Distance.Km)
}

func TestNearest_Idempotent(t *testing.T) {
	svc := testService(t)

	p := params("lat", "38.9", "lng", "-77.0", "limit", "0")
	first, perr := svc.Nearest(p)
	require.Nil(t, perr)
	for i := 0; i < 5; i++ {
		again, perr := svc.Nearest(p)
		require.Nil(t, perr)
		assert.Equal(t, first, again)
	}
}

func TestNearest_CappedLimitEchoed(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "0", "lng", "0", "limit", "50"))
	require.Nil(t, perr)
	assert.Equal(t, MaxLimit, resp.Query.Limit)
}

func TestNearest_QueryEcho(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params(
		"lat", "38.9", "lng", "-77.0",
		"provider", "AWS", "service", model.ServiceVault, "tier", "Core", "limit", "2",
	))
	require.Nil(t, perr)
	assert.Equal(t, 38.9, resp.Query.Lat)
	assert.Equal(t, -77.0, resp.Query.Lng)
	require.NotNil(t, resp.Query.Provider)
	assert.Equal(t, "AWS", *resp.Query.Provider)
	require.NotNil(t, resp.Query.Service)
	assert.Equal(t, model.ServiceVault, *resp.Query.Service)
	require.NotNil(t, resp.Query.Tier)
	assert.Equal(t, "Core", *resp.Query.Tier)
	assert.Nil(t, resp.Query.Edition)
	assert.Equal(t, 2, resp.Query.Limit)
}

func TestNearest_ValidationShortCircuits(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.Nearest(params("lat", "91", "lng", "0"))
	require.NotNil(t, perr)
	assert.Nil(t, resp)
	assert.Equal(t, "lat", perr.Parameter)
}

func TestList_FilterParity(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.List(params("provider", "AWS", "service", model.ServiceVault))
	require.Nil(t, perr)
	assert.Equal(t, 2, resp.Count)
	// Listings come back in id order.
	assert.Equal(t, "aws-east", resp.Regions[0].ID)
	assert.Equal(t, "aws-west", resp.Regions[1].ID)

	_, perr = svc.List(params("service", "quantum"))
	require.NotNil(t, perr)
	assert.Equal(t, "service", perr.Parameter)
}

func TestList_All(t *testing.T) {
	svc := testService(t)

	resp, perr := svc.List(params())
	require.Nil(t, perr)
	assert.Equal(t, len(testRegions()), resp.Count)
}

func TestGet(t *testing.T) {
	svc := testService(t)

	r, ok := svc.Get("azure-east")
	require.True(t, ok)
	assert.Equal(t, "East US", r.Name)

	_, ok = svc.Get("aws-nowhere")
	assert.False(t, ok)
}
