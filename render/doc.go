// Package render resolves search marks to concrete colours and writes them
// onto a raster. It is the only place where colour literals for the
// visualization live; search code deals in route.Mark values only.
//
// Default palette: Start blue, Explored green, Path red.
package render
