package colour

// Named colours, all fully opaque.
var (
	Aqua            = Colour{0, 1, 1, 1}
	Bisque          = Colour{1, 0.89, 0.77, 1}
	Black           = Colour{0, 0, 0, 1}
	Blue            = Colour{0, 0, 1, 1}
	Bronze          = Colour{0.8, 0.5, 0.2, 1}
	CadetBlue       = Colour{0.37, 0.62, 0.63, 1}
	Caramel         = Colour{1, 0.6, 0.2, 1}
	Chocolate       = Colour{0.82, 0.41, 0.12, 1}
	ClearColour     = Colour{0.1, 0.1, 0.1, 1}
	Coral           = Colour{1, 0.5, 0.31, 1}
	Cyan            = Colour{0, 1, 1, 1}
	DarkBlue        = Colour{0, 0, 0.5, 1}
	DarkCyan        = Colour{0, 0.5, 0.5, 1}
	DarkGrey        = Colour{0.4, 0.4, 0.4, 1}
	DarkGreen       = Colour{0, 0.5, 0, 1}
	DarkMagenta     = Colour{0.5, 0, 0.5, 1}
	DarkOrange      = Colour{0.8, 0.4, 0, 1}
	DarkPink        = Colour{0.7, 0.3, 0.3, 1}
	DarkPurple      = Colour{0.3, 0, 0.3, 1}
	DarkRed         = Colour{0.5, 0, 0, 1}
	DarkSlateBlue   = Colour{0.28, 0.24, 0.55, 1}
	DarkSlateGray   = Colour{0.18, 0.31, 0.31, 1}
	DarkYellow      = Colour{0.5, 0.5, 0, 1}
	Firebrick       = Colour{0.7, 0.13, 0.13, 1}
	ForestGreen     = Colour{0.13, 0.55, 0.13, 1}
	Gold            = Colour{1, 0.84, 0, 1}
	Goldenrod       = Colour{0.85, 0.65, 0.13, 1}
	Green           = Colour{0, 1, 0, 1}
	Indigo          = Colour{0.29, 0, 0.51, 1}
	Lavender        = Colour{0.71, 0.49, 0.86, 1}
	LavenderBlush   = Colour{1, 0.94, 0.96, 1}
	LavenderMagenta = Colour{0.93, 0.51, 0.93, 1}
	LemonChiffon    = Colour{1, 0.98, 0.8, 1}
	LightGrey       = Colour{0.8, 0.8, 0.8, 1}
	Magenta         = Colour{1, 0, 1, 1}
	Maroon          = Colour{0.5, 0, 0, 1}
	MediumOrchid    = Colour{0.73, 0.33, 0.83, 1}
	MidnightBlue    = Colour{0.1, 0.1, 0.44, 1}
	MintCream       = Colour{0.96, 1, 0.98, 1}
	Olive           = Colour{0.5, 0.5, 0, 1}
	Orange          = Colour{1, 0.5, 0, 1}
	PaleVioletRed   = Colour{0.86, 0.44, 0.58, 1}
	Pink            = Colour{1, 0.5, 0.5, 1}
	Red             = Colour{1, 0, 0, 1}
	RosyBrown       = Colour{0.74, 0.56, 0.56, 1}
	Salmon          = Colour{0.98, 0.5, 0.45, 1}
	SandyBrown      = Colour{0.96, 0.64, 0.38, 1}
	Sienna          = Colour{0.63, 0.32, 0.18, 1}
	Silver          = Colour{0.75, 0.75, 0.75, 1}
	SlateBlue       = Colour{0.42, 0.35, 0.8, 1}
	SlateGray       = Colour{0.44, 0.5, 0.56, 1}
	SkyBlue         = Colour{0.53, 0.81, 0.92, 1}
	SteelBlue       = Colour{0.27, 0.51, 0.71, 1}
	Teal            = Colour{0, 0.5, 0.5, 1}
	Tomato          = Colour{1, 0.39, 0.28, 1}
	Turquoise       = Colour{0.25, 0.88, 0.82, 1}
	Violet          = Colour{0.93, 0.51, 0.93, 1}
	White           = Colour{1, 1, 1, 1}
	Yellow          = Colour{1, 1, 0, 1}
)
