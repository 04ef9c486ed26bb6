package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		dimX, dimY int
		want       Shape
		str        string
	}{
		{1, 1, Shape{Kind: Scalar, Rows: 1, Cols: 1}, "scalar"},
		{8, 1, Shape{Kind: Vector1D, Rows: 8, Cols: 1}, "vector1d(8)"},
		{1, 12, Shape{Kind: Vector2D, Rows: 1, Cols: 12}, "vector2d(1,12)"},
		{2, 12, Shape{Kind: Vector2D, Rows: 2, Cols: 12}, "vector2d(2,12)"},
	}
	for _, tt := range tests {
		got := ShapeOf(tt.dimX, tt.dimY)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.str, got.String())
		assert.Equal(t, int(tt.want.Kind), got.Rank())
	}
}

func compileSpecs(f channel.Family, specs ...channel.Spec) *FamilyLayout {
	return CompileFamily(f, Resolve(specs))
}

func offsets(l *FamilyLayout) map[string]int {
	out := map[string]int{}
	for _, c := range l.Channels() {
		out[c.Member()] = c.Offset
	}
	return out
}

func TestCompileFamilyCountsAndSizes(t *testing.T) {
	l := compileSpecs(channel.Parameter,
		channel.Spec{Name: "i32_param", DimX: 1, DimY: 1, Type: channel.Int32},
		channel.Spec{Name: "double_vec_param", DimX: 4, DimY: 4, Type: channel.Double},
	)
	ch := l.Channels()
	require.Len(t, ch, 2)

	assert.Equal(t, 1, ch[0].Count)
	assert.Equal(t, 4, ch[0].ByteSize)
	assert.Equal(t, 16, ch[1].Count)
	assert.Equal(t, 128, ch[1].ByteSize)

	assert.Equal(t, map[string]int{"i32_param": 0, "double_vec_param": 8}, offsets(l))
	assert.Equal(t, 136, l.Size)
	assert.Equal(t, 8, l.Align)
}

func TestCompileFamilyOffsets(t *testing.T) {
	i32 := func(name string, dimX int) channel.Spec {
		return channel.Spec{Name: name, DimX: dimX, DimY: 1, Type: channel.Int32}
	}
	dbl := func(name string, dimX int) channel.Spec {
		return channel.Spec{Name: name, DimX: dimX, DimY: 1, Type: channel.Double}
	}

	tests := []struct {
		name  string
		specs []channel.Spec
		want  map[string]int
		size  int
	}{
		{
			name:  "packed ints",
			specs: []channel.Spec{i32("a", 1), i32("b", 3), i32("c", 1)},
			want:  map[string]int{"a": 0, "b": 4, "c": 16},
			size:  20,
		},
		{
			name:  "double after odd int count",
			specs: []channel.Spec{i32("a", 3), dbl("d", 1), i32("e", 1)},
			want:  map[string]int{"a": 0, "d": 16, "e": 24},
			size:  32,
		},
		{
			name:  "group aligned to widest member",
			specs: []channel.Spec{i32("a", 1), i32("g.x", 1), dbl("g.y", 1)},
			want:  map[string]int{"a": 0, "g.x": 8, "g.y": 16},
			size:  24,
		},
		{
			name:  "group tail padding",
			specs: []channel.Spec{dbl("g.d", 1), i32("g.a", 1), i32("b", 1)},
			want:  map[string]int{"g.d": 0, "g.a": 8, "b": 16},
			size:  24,
		},
		{
			name:  "int only group keeps 4 byte alignment",
			specs: []channel.Spec{i32("a", 1), i32("g.x", 1), i32("b", 1)},
			want:  map[string]int{"a": 0, "g.x": 4, "b": 8},
			size:  12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := compileSpecs(channel.Signal, tt.specs...)
			assert.Equal(t, tt.want, offsets(l))
			assert.Equal(t, tt.size, l.Size)
		})
	}
}

func TestCompileFamilyOffsetInvariants(t *testing.T) {
	var specs []channel.Spec
	types := []channel.ElementType{channel.Int32, channel.Double}
	groups := []string{"", "gx.", "", "gy.", "gx."}
	for i := 0; i < 20; i++ {
		specs = append(specs, channel.Spec{
			Name: groups[i%len(groups)] + string(rune('a'+i)),
			DimX: 1 + i%3,
			DimY: 1 + i%2,
			Type: types[(i/3)%2],
		})
	}
	l := compileSpecs(channel.Parameter, specs...)

	end := 0
	for _, c := range l.Channels() {
		require.True(t, c.HasOffset)
		assert.Zero(t, c.Offset%c.Type.Width(), "%s misaligned", c.Member())
		assert.GreaterOrEqual(t, c.Offset, end, "%s overlaps", c.Member())
		end = c.Offset + c.ByteSize
	}
	assert.GreaterOrEqual(t, l.Size, end)
	assert.Zero(t, l.Size%l.Align)
}

func TestCompileFamilyPorts(t *testing.T) {
	l := compileSpecs(channel.Inport,
		channel.Spec{Name: "scalar_in", DimX: 1, DimY: 1, Type: channel.Int32},
		channel.Spec{Name: "vectors.vector1d_in", DimX: 8, DimY: 1},
	)
	ch := l.Channels()
	require.Len(t, ch, 2)
	for _, c := range ch {
		assert.Equal(t, channel.Double, c.Type)
		assert.False(t, c.HasOffset)
	}
	assert.Equal(t, Shape{Kind: Vector1D, Rows: 8, Cols: 1}, ch[1].Shape)
	assert.Equal(t, "vectors/vector1d_in", ch[1].HostPath())
	assert.Equal(t, []string{"vectors"}, l.Groups())
	assert.Zero(t, l.Size)
}

func TestCompileFamilyEmpty(t *testing.T) {
	l := CompileFamily(channel.Signal, nil)
	assert.Empty(t, l.Channels())
	assert.Zero(t, l.Size)
	assert.Equal(t, 1, l.Align)
}

func TestCompileFamilySignalDescription(t *testing.T) {
	l := compileSpecs(channel.Signal,
		channel.Spec{Name: "g.plain", DimX: 1, DimY: 1},
		channel.Spec{Name: "described", DimX: 1, DimY: 1, Description: "speed"},
	)
	ch := l.Channels()
	assert.Equal(t, "plain", ch[0].Description)
	assert.Equal(t, "speed", ch[1].Description)
}

func TestAlignSize(t *testing.T) {
	assert.Equal(t, 0, AlignSize(0, 8))
	assert.Equal(t, 8, AlignSize(1, 8))
	assert.Equal(t, 8, AlignSize(8, 8))
	assert.Equal(t, 12, AlignSize(9, 4))
}
