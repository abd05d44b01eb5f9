package urls

// ShieldsHost is the badge rendering service every badge URL points at.
const ShieldsHost = "img.shields.io"

// Badge styles understood by shields.io.
const (
	StyleFlat        = "flat"
	StyleFlatSquare  = "flat-square"
	StylePlastic     = "plastic"
	StyleForTheBadge = "for-the-badge"
	StyleSocial      = "social"
)

// Shields creates a Spec for a shields.io badge. badgePath is the badge
// template path without a leading slash, e.g. "packagist/v/vendor/pkg.svg".
func Shields(badgePath string, params ...Param) Spec {
	return New(ShieldsHost+"/"+badgePath, params...)
}

// Logo sets the badge's logo parameter.
func Logo(name string) Param { return P("logo", name) }

// Style sets the badge's style parameter.
func Style(style string) Param { return P("style", style) }

// Label overrides the badge's left-hand text.
func Label(text string) Param { return P("label", text) }

// Sort sets the version ordering used by version badges.
func Sort(order string) Param { return P("sort", order) }
