package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Path  []int  `json:"path"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		require.Equal(t, name, c.Name())
	}

	_, ok := ByName("does-not-exist")
	require.False(t, ok)
}

func TestCodecs_AgreeOnSnapshotShapes(t *testing.T) {
	in := payload{ID: 7, Label: "edge", Path: []int{0, 2, 1}}

	std := MustMarshal(JSON{}, in)
	fast := MustMarshal(GoJSON{}, in)
	require.JSONEq(t, string(std), string(fast))

	var out payload
	require.NoError(t, GoJSON{}.Unmarshal(std, &out))
	require.Equal(t, in, out)
}

func TestGoJSON_Append(t *testing.T) {
	dst := []byte("header:")

	dst, err := GoJSON{}.Append(dst, payload{ID: 1})
	require.NoError(t, err)
	require.Contains(t, string(dst), "header:")
	require.Contains(t, string(dst), `"id":1`)
}
