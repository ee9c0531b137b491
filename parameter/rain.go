package parameter

import "time"

// Field spawner defaults
const (
	// FieldSpawnInterval is the average time between trail births (~20/s)
	FieldSpawnInterval = 50 * time.Millisecond

	FieldMinX, FieldMaxX = -15.0, 18.0
	FieldMinY, FieldMaxY = 0.0, 8.0
	FieldMinZ, FieldMaxZ = -4.0, 1.0

	// Requested glyph lifetime range, before depth scaling
	FieldLifetimeMin = 500 * time.Millisecond
	FieldLifetimeMax = 2 * time.Second

	// Glyph emission rate range per trail, glyphs per second
	FieldRateMin, FieldRateMax = 5.0, 15.0
)

// Trail defaults
const (
	TrailDefaultMaxLength     = 40
	TrailDefaultSpawnInterval = 100 * time.Millisecond

	// Drift per second per unit of depth scale
	TrailDriftX = 1.0
	TrailDriftY = 0.3
)

// Glyph lifecycle
const (
	// GlyphChurnInterval is the average time between character re-rolls (2 per second)
	// Read as a rate, not a mean; field.churn_interval = "2s" gives the slower churn
	GlyphChurnInterval = 500 * time.Millisecond

	// GlyphShrinkDuration is the scale-out animation after decay
	GlyphShrinkDuration = 500 * time.Millisecond

	// GlyphHeadFadeDuration is the white-to-green settle of the previous head glyph
	GlyphHeadFadeDuration = 200 * time.Millisecond
)

// GlyphAlphabet is 0-9, a-x and A-Y: 59 symbols
var GlyphAlphabet = []rune("0123456789abcdefghijklmnopqrstuvwxABCDEFGHIJKLMNOPQRSTUVWXY")
