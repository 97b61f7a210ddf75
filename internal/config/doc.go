// Package config provides configuration management for tintshade.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Defaults compiled into the binary
//  2. User configuration (~/.config/tintshade/config.yaml)
//  3. Project configuration (./.tintshade/config.yaml)
//  4. Environment: a .env file in the working directory, then the process
//     environment (TINTSHADE_BASE_COLOR, TINTSHADE_TINTS, TINTSHADE_SHADES,
//     TINTSHADE_FORMAT, TINTSHADE_EXPORT_DIR, TINTSHADE_LOG_LEVEL)
//
// # Configuration Structure
//
//	baseColor: "#3b82f6"
//	tints: 10
//	shades: 10
//	maxVariants: 20
//	format: hex            # hex, rgb or hsl
//	presets:
//	  - name: "Brand Blue"
//	    color: "#3b82f6"
//	export:
//	  directory: "./palettes"
//	  toolName: "Tint & Shade Generator"
//	policy:                # lightness schedule constants
//	  ceilingMin: 90
//	  ceilingMax: 98
//	  floorMin: 2
//	  floorMax: 10
//	  blend: 0.8
//	  minStep: 0.5
//
// Keys absent from a layer keep the value of the layer below. Presets are
// merged by name. Colors may use any form accepted by color.Normalize and are
// stored in canonical "#rrggbb" form.
package config
