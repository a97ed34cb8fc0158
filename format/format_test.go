package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	desc, err := Lookup(NV21)
	require.NoError(t, err)
	assert.Equal(t, NV21, desc.ID)
	assert.Equal(t, "NV21", desc.Name)
	assert.Equal(t, TopologySemiPlanar, desc.Topology)
	assert.Equal(t, CrFirst, desc.Order)
	assert.Equal(t, 8, desc.BitDepth())
}

func TestLookup_Unsupported(t *testing.T) {
	for _, id := range []ID{-1, formatCount, 99} {
		_, err := Lookup(id)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "id %d", id)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	desc, err := Lookup(YUY2)
	require.NoError(t, err)
	desc.Tokens[0] = "mutated"
	desc.Packed.Y = 7

	again, err := Lookup(YUY2)
	require.NoError(t, err)
	assert.Equal(t, "yuy2", again.Tokens[0])
	assert.Equal(t, 0, again.Packed.Y)
}

func TestRegistry_Consistency(t *testing.T) {
	all := All()
	require.Len(t, all, int(formatCount))

	for i, d := range all {
		t.Run(d.Name, func(t *testing.T) {
			assert.Equal(t, ID(i), d.ID)
			assert.NotEmpty(t, d.Tokens)
			assert.Equal(t, d.Name, d.ID.String())

			if d.Topology == TopologyPacked {
				require.NotNil(t, d.Packed, "packed layout needs offsets")
				assert.Equal(t, Subsampling422, d.Subsampling)
			}
			if d.IsTiled() {
				assert.Positive(t, d.Tile.Width)
				assert.Positive(t, d.Tile.Height)
			} else {
				assert.Equal(t, TileShape{}, d.Tile)
			}
		})
	}
}

func TestPackedOffsets(t *testing.T) {
	tests := []struct {
		id   ID
		want PackedOffsets
	}{
		{YUY2, PackedOffsets{Y: 0, Cb: 1, Cr: 3}},
		{UYVY, PackedOffsets{Y: 1, Cb: 0, Cr: 2}},
		{YVYU, PackedOffsets{Y: 0, Cb: 3, Cr: 1}},
		{Y42210, PackedOffsets{Y: 0, Cb: 3, Cr: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			desc, err := Lookup(tt.id)
			require.NoError(t, err)
			require.NotNil(t, desc.Packed)
			assert.Equal(t, tt.want, *desc.Packed)
		})
	}
}

func TestBitDepth(t *testing.T) {
	tenBit := map[ID]bool{YV1210: true, Y42210: true, NV1210: true, NV1210Tiled: true}
	for _, d := range All() {
		want := 8
		if tenBit[d.ID] {
			want = 10
		}
		assert.Equal(t, want, d.BitDepth(), d.Name)
	}
}

func TestIDString_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", ID(-3).String())
	assert.Equal(t, "unknown", formatCount.String())
}

func TestFindByNameToken(t *testing.T) {
	tests := []struct {
		text string
		want ID
	}{
		{"yv1210_1920x1080", YV1210},
		{"foreman_yv12_352x288.yuv", YV12},
		{"FOREMAN_NV12_352x288.YUV", NV12},
		{"capture_yuv420sp_tiled_mode0_10bit_1280x720.bin", NV1210Tiled},
		{"capture_yuv420sp_tiled8x4_1280x720.bin", NV12Tiled8x4},
		{"capture_yuv420sp_tiled_1280x720.bin", NV12Tiled},
		{"capture_yuv420sp_10bit.bin", NV1210},
		{"capture_yuv420sp.bin", NV12},
		{"depth_y800_640x480.raw", Mono},
		{"clip_yuv444p_1920x1080.yuv", YUV444P},
		{"clip_422p.yuv", YV16},
		{"clip_y42210.yuv", Y42210},
		{"cam_uyvy.raw", UYVY},
		{"cam_yuyv.raw", YUY2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			id, err := FindByNameToken(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id, "got %s", id)
		})
	}
}

func TestFindByNameToken_NoMatch(t *testing.T) {
	_, err := FindByNameToken("holiday_1920x1080.rgb")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = FindByNameToken("")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestTokenIndex_Ordering(t *testing.T) {
	for i := 1; i < len(tokenIndex); i++ {
		prev, cur := tokenIndex[i-1].token, tokenIndex[i].token
		if len(prev) == len(cur) {
			assert.Less(t, prev, cur)
		} else {
			assert.Greater(t, len(prev), len(cur))
		}
	}
}
