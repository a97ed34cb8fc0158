// Package tile converts tile-major semi-planar frames into raster order.
//
// A tiled plane is stored as a sequence of tile rows. Each tile row holds
// width/tileWidth tiles of tileWidth*tileHeight bytes, and each tile is stored
// row by row. The byte of raster pixel (x, y) therefore lives at
//
//	(y/th)*th*width + (x/tw)*tw*th + (y%th)*tw + x%tw
//
// The interleaved chroma plane of a 4:2:0 frame follows the luma plane and is
// tiled the same way: width bytes per row (Cb/Cr pairs), height/2 rows.
package tile
