package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStationPartition(t *testing.T) {
	builder, err := NewStationPartitionBuilder(5)
	require.NoError(t, err)
	p := builder.Connect(stationA, stationB).Connect(stationC, stationB).Build()

	require.True(t, p.Connected(stationA, stationC), "A and C are joined through B")
	require.False(t, p.Connected(stationA, stationD))
	require.True(t, p.Connected(stationD, stationD), "Every station is connected to itself")

	far := Station{ID: 40, Name: "Far"}
	require.True(t, p.Connected(far, far), "Unknown stations are connected to themselves")
	require.False(t, p.Connected(far, stationA), "Unknown stations are connected to nothing else")

	builder.Connect(stationD, stationA)
	require.False(t, p.Connected(stationD, stationC), "Built partitions do not change")

	_, err = NewStationPartitionBuilder(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
