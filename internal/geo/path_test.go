package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

func TestDecodePath(t *testing.T) {
	t.Parallel()

	// Reference example from the polyline algorithm documentation
	points, err := DecodePath("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 0.00001)
	assert.InDelta(t, -120.2, points[0].Lng, 0.00001)
	assert.InDelta(t, 43.252, points[2].Lat, 0.00001)
	assert.InDelta(t, -126.453, points[2].Lng, 0.00001)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	original := []models.LatLng{
		{Lat: 47.6062, Lng: -122.3321},
		{Lat: 47.6205, Lng: -122.3493},
		{Lat: 47.6740, Lng: -122.1215},
	}

	decoded, err := DecodePath(EncodePath(original))
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	for i := range original {
		assert.InDelta(t, original[i].Lat, decoded[i].Lat, 0.00001)
		assert.InDelta(t, original[i].Lng, decoded[i].Lng, 0.00001)
	}
}

func TestIsOnPath(t *testing.T) {
	t.Parallel()

	// Straight east-west segment along 47.6 latitude
	path := EncodePath([]models.LatLng{
		{Lat: 47.6, Lng: -122.40},
		{Lat: 47.6, Lng: -122.30},
	})

	tests := []struct {
		name      string
		point     models.LatLng
		tolerance float64
		want      bool
	}{
		{
			name:      "point on the segment",
			point:     models.LatLng{Lat: 47.6, Lng: -122.35},
			tolerance: 10,
			want:      true,
		},
		{
			name:      "point ~110m north of the segment",
			point:     models.LatLng{Lat: 47.601, Lng: -122.35},
			tolerance: 50,
			want:      false,
		},
		{
			name:      "same offset with generous tolerance",
			point:     models.LatLng{Lat: 47.601, Lng: -122.35},
			tolerance: 200,
			want:      true,
		},
		{
			name:      "point far beyond the segment end",
			point:     models.LatLng{Lat: 47.6, Lng: -122.20},
			tolerance: 100,
			want:      false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := IsOnPath(tt.point, path, tt.tolerance)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsOnPathEmpty(t *testing.T) {
	t.Parallel()

	got, err := IsOnPath(models.LatLng{Lat: 47.6, Lng: -122.3}, "", 100)
	require.NoError(t, err)
	assert.False(t, got)
}
