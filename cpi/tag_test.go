// cpi/tag_test.go
package cpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorTagKnownDiscriminators(t *testing.T) {
	tests := []struct {
		name string
		want []byte
	}{
		{"buy", []byte{0x66, 0x06, 0x3d, 0x12, 0x01, 0xda, 0xeb, 0xea}},
		{"sell", []byte{0x33, 0xe6, 0x85, 0xa4, 0x01, 0x7f, 0x83, 0xad}},
		{"swap", []byte{0xf8, 0xc6, 0x9e, 0x91, 0xe1, 0x75, 0x87, 0xc8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnchorTag(tt.name))
		})
	}
}

func TestAnchorTagLength(t *testing.T) {
	assert.Len(t, AnchorTag("place_take_order"), 8)
}

func TestLegacyTag(t *testing.T) {
	assert.Equal(t, []byte{0x07}, LegacyTag(0x07))
	assert.Equal(t, []byte{9}, LegacyTag(9))
	assert.Empty(t, LegacyTag())
}
