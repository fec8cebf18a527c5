package fmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToken_SingleWaypoint(t *testing.T) {
	waypoints := []Waypoint{{SystemID: 30000142, WaypointType: WaypointStart}}

	token, err := EncodeToken(waypoints)
	require.NoError(t, err)
	assert.Equal(t, uint8(FMAPVersion), token.Version)
	assert.Equal(t, 1, token.WaypointCount)
	assert.NotEmpty(t, token.Token)
}

func TestEncodeToken_MultipleWaypoints(t *testing.T) {
	waypoints := []Waypoint{
		{SystemID: 30000142, WaypointType: WaypointStart},
		{SystemID: 30000144, WaypointType: WaypointJump},
		{SystemID: 30002187, WaypointType: WaypointNPCGate},
	}

	token, err := EncodeToken(waypoints)
	require.NoError(t, err)
	assert.Equal(t, uint8(FMAPVersion), token.Version)
	assert.Equal(t, 3, token.WaypointCount)
	assert.NotEmpty(t, token.Token)
}

func TestEncodeToken_RejectsSystemIDBelowBase(t *testing.T) {
	waypoints := []Waypoint{{SystemID: 29999999, WaypointType: WaypointStart}}

	_, err := EncodeToken(waypoints)
	require.Error(t, err)
	var invalid *InvalidSystemIDError
	require.ErrorAs(t, err, &invalid)
}

func TestEncodeToken_BitWidthWithinBounds(t *testing.T) {
	waypoints := []Waypoint{{SystemID: BaseSystemID + 142, WaypointType: WaypointStart}}

	token, err := EncodeToken(waypoints)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, token.BitWidth, 1)
	assert.LessOrEqual(t, token.BitWidth, 30)
}

func TestEncodeToken_MaxOffsetUsesFullBitWidth(t *testing.T) {
	maxSystemID := int64(BaseSystemID + MaxOffset)
	waypoints := []Waypoint{{SystemID: maxSystemID, WaypointType: WaypointStart}}

	token, err := EncodeToken(waypoints)
	require.NoError(t, err)
	assert.Equal(t, 30, token.BitWidth)
}

func TestDecodeToken_RoundTripsEncodedWaypoints(t *testing.T) {
	waypoints := []Waypoint{
		{SystemID: 30000142, WaypointType: WaypointStart},
		{SystemID: 30000144, WaypointType: WaypointJump},
		{SystemID: 30002187, WaypointType: WaypointNPCGate},
	}

	token, err := EncodeToken(waypoints)
	require.NoError(t, err)

	decoded, err := DecodeToken(token.Token)
	require.NoError(t, err)
	require.Equal(t, waypoints, decoded)
}

func TestDecodeToken_RejectsMalformedToken(t *testing.T) {
	_, err := DecodeToken("not-valid-base64!!")
	require.Error(t, err)
}
