package chart

// emuPerPixel converts screen pixels at 96 DPI (914400 EMU per inch).
const emuPerPixel = 9525

// PixelsToEMU converts a pixel length to EMU, rounding half up.
func PixelsToEMU(px float64) int64 {
	return int64(px*emuPerPixel + 0.5)
}
