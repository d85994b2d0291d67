package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermID(t *testing.T) {
	tests := []struct {
		name string
		term string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, TermID(tt.term))
		})
	}
}

func TestTermID_Distinct(t *testing.T) {
	seen := make(map[uint64]string)
	for _, term := range []string{"go", "Go", "golang", "gopher", "g", "o", "og"} {
		id := TermID(term)
		prev, dup := seen[id]
		require.False(t, dup, "%q collides with %q", term, prev)
		seen[id] = term
	}
}
