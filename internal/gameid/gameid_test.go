package gameid

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()
	require.Len(t, id, Length)
	assert.NoError(t, Validate(id))
	assert.NotEqual(t, id, Generate())
}

func TestGeneratorWithReader(t *testing.T) {
	g := NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xab}, 64)))
	id := g.Generate()
	assert.NoError(t, Validate(id))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "00000000000000000000000000", Encode(uuid.UUID{}))

	var max uuid.UUID
	for i := range max {
		max[i] = 0xff
	}
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", Encode(max))

	var one uuid.UUID
	one[15] = 0x01
	assert.Equal(t, "00000000000000000000000001", Encode(one))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h455vb4pex5vsknk084sn02q", false},
		{"too short", "01h455", true},
		{"first char too high", "81h455vb4pex5vsknk084sn02q", true},
		{"bad character", "01h455vb4pex5vsknk084sn0uq", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
