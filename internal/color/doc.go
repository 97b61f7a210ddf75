// Package color converts between hex, RGB and HSL representations and
// derives the CMYK and HSV display formats.
//
// # Error tiers
//
// HexToRGB is strict: anything other than "#" followed by six hex digits
// fails with an error matching ErrInvalidColorFormat. It is the only hard
// failure in the package.
//
// Convert and Light accept any of the three textual formats and never fail.
// Unrecognized input yields a safe fallback (the original string, or "light")
// together with a *Diagnostic the caller may log or ignore. The package
// itself performs no I/O.
//
// All functions are pure and safe for concurrent use.
package color
