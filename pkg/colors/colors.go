package colors

import (
	"hash/crc32"
	"image/color"
)

// Fixed colors for the rotation plane labels up to six dimensions; any
// label outside the table hashes to a stable color instead.
var colorMap = map[string]color.RGBA{
	"XY": {247, 10, 10, 255},
	"XZ": {6, 245, 34, 255},
	"XW": {247, 127, 10, 255},
	"XV": {26, 160, 253, 255},
	"XU": {153, 1, 1, 255},
	"YZ": {244, 251, 18, 255},
	"YW": {64, 216, 140, 255},
	"YV": {105, 20, 253, 255},
	"YU": {8, 126, 2, 255},
	"ZW": {247, 21, 223, 255},
}

func GetColor(name string) color.RGBA {
	if c, ok := colorMap[name]; ok {
		return c
	}
	return hashToRGB(name)
}

func hashToRGB(input string) color.RGBA {
	// Calculate CRC32 hash
	hash := crc32.ChecksumIEEE([]byte(input))
	// Map the hash value to RGB color space
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}
