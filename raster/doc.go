// Package raster holds a decoded image as a flat, mutable buffer of RGB
// pixels and moves it in and out of image files.
//
// What:
//
//   - Grid is a Width×Height row-major buffer (Pix[y*Width+x]) of RGB triples.
//   - At/Set read and write single pixels; Clone gives an independent copy.
//   - FromImage/Image bridge to the standard image.Image world.
//   - Load/Save/Decode/Encode read and write BMP (default) and PNG files.
//
// Why:
//
//   - Search code needs O(1) pixel access without interface dispatch per call.
//   - Every search run recolours its own private copy, so copying must be cheap
//     and must never alias the caller's buffer.
//
// Formats:
//
//   - FormatBMP: golang.org/x/image/bmp (24-bit, the original tool's output format).
//   - FormatPNG: image/png.
//   - FormatFromPath chooses by extension; WithDefaultExt appends ".bmp" to bare names.
//
// Errors:
//
//   - ErrEmptyGrid:     width or height is not positive.
//   - ErrUnknownFormat: extension is neither .bmp nor .png.
//   - I/O and codec failures are wrapped with the offending path.
package raster
