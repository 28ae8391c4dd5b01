package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{
			name:        "plain ids",
			addr:        New("bio", "membraneProperties"),
			expectedStr: "bio.membraneProperties",
		},
		{
			name: "path with indices",
			addr: &Address{
				Path: []PathSegment{NewPathSegment("bio"), NewPathSegmentWithIndex("naChan", 2)},
			},
			expectedStr: "bio.naChan[2]",
		},
		{
			name:        "nil address",
			addr:        nil,
			expectedStr: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	for _, id := range []string{"a.b.c", "bio.intracellularProperties.ca[0]", "hh.condDensity_naChans"} {
		t.Run(id, func(t *testing.T) {
			addr, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, addr.String())

			again, err := Parse(addr.String())
			require.NoError(t, err)
			assert.Equal(t, addr, again)
		})
	}
}

func TestAddress_Parent(t *testing.T) {
	addr, err := Parse("bio.membraneProperties.naChans[1]")
	require.NoError(t, err)

	parent := addr.Parent()
	assert.Equal(t, "bio.membraneProperties", parent.String())
	assert.Equal(t, 3, addr.Len(), "Parent must not modify the child")
	assert.Nil(t, New("bio").Parent())
	assert.Equal(t, 0, (*Address)(nil).Len())
}
