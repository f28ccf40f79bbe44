package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fudini/bender/errors"
)

const sampleDoc = `
types:
  - kind: primitive
    name: u8
  - kind: alias
    name: Version
    target: u8
  - kind: struct
    name: Header
    fields:
      - name: version
        type: u8
      - name: reserved
        type: u8
        length: 3
  - kind: enum
    name: Color
    underlying: u8
    variants:
      - name: Red
        value: 0
      - name: Green
        value: 1
  - kind: union
    name: Message
    discriminator: [version]
    members: [Header]
`

func TestLoad(t *testing.T) {
	types, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, types, 5)

	// Input order is preserved verbatim
	assert.Equal(t, "u8", types[0].Name)
	assert.Equal(t, KindAlias, types[1].Kind)
	assert.Equal(t, "u8", types[1].Target)
	assert.Equal(t, 3, types[2].Fields[1].Length)
	assert.Equal(t, uint64(1), types[3].Variants[1].Value)
	assert.Equal(t, []string{"version"}, types[4].DiscriminatorPath)
	assert.Equal(t, []string{"Header"}, types[4].Members)
}

func TestLoad_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown kind",
			doc: `
types:
  - kind: bitfield
    name: Flags
`,
		},
		{
			name: "missing name",
			doc: `
types:
  - kind: primitive
`,
		},
		{
			name: "alias without target",
			doc: `
types:
  - kind: alias
    name: Version
`,
		},
		{
			name: "enum without underlying",
			doc: `
types:
  - kind: enum
    name: Color
    variants:
      - name: Red
        value: 0
`,
		},
		{
			name: "union without members",
			doc: `
types:
  - kind: union
    name: Message
    discriminator: [version]
`,
		},
		{
			name: "union without discriminator",
			doc: `
types:
  - kind: union
    name: Message
    members: [Header]
`,
		},
		{
			name: "unknown document field",
			doc: `
types:
  - kind: primitive
    name: u8
    alignment: 4
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidSchemaError(err), "expected ErrInvalidSchema, got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	types, err := LoadFile("testdata/protocol.yaml")
	require.NoError(t, err)
	require.Len(t, types, 8)

	reg := NewRegistry(types)
	packet, ok := reg.Lookup("Packet")
	require.True(t, ok)
	assert.Equal(t, KindStruct, packet.Kind)

	message, ok := reg.Lookup("Message")
	require.True(t, ok)
	assert.Equal(t, []string{"header", "version"}, message.DiscriminatorPath)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
