package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBookingID(t *testing.T) {
	cases := []struct {
		name string
		resp map[string]any
		want string
	}{
		{
			name: "nested under booking",
			resp: map[string]any{"booking": map[string]any{"_id": "bk-1"}},
			want: "bk-1",
		},
		{
			name: "top level",
			resp: map[string]any{"_id": "bk-2", "status": "pending"},
			want: "bk-2",
		},
		{
			name: "doubly nested under data.booking",
			resp: map[string]any{"data": map[string]any{"booking": map[string]any{"_id": "bk-3"}}},
			want: "bk-3",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractBookingID(tc.resp)
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestExtractBookingIDStrategyOrder(t *testing.T) {
	// booking._id wins over a top-level _id when both are present.
	resp := map[string]any{
		"_id":     "top",
		"booking": map[string]any{"_id": "nested"},
	}
	id, err := ExtractBookingID(resp)
	require.NoError(t, err)
	assert.Equal(t, "nested", id)
}

func TestExtractBookingIDFailsLoudly(t *testing.T) {
	for _, resp := range []map[string]any{
		nil,
		{},
		{"status": "created"},
		{"booking": map[string]any{"id": "wrong-key"}},
		{"_id": 12345}, // non-string identifier
		{"data": map[string]any{"_id": "not-under-booking"}},
	} {
		id, err := ExtractBookingID(resp)
		require.Error(t, err, "resp %v", resp)
		assert.Empty(t, id)
		assert.Contains(t, err.Error(), MsgNoBookingID)
	}
}
