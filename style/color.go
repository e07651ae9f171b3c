package style

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Color is 24 bit RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Blue  = Color{0, 0, 255}
)

var namedColors = map[string]Color{
	"red":   Red,
	"blue":  Blue,
	"black": Black,
	"white": White,
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	errBadHex     = errors.New("hex color must have 3 or 6 digits")
	errBadRGB     = errors.New("malformed rgb() color")
	errUnknownClr = errors.New("unknown color name")

	reRGB = regexp.MustCompile(`^rgb\s*\(\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*\)$`)
)

// ParseColor never fails, unrecognized values become black and a warning is
// logged. Accepted forms are #rgb, #rrggbb, rgb(r, g, b) with channels
// clamped to [0, 255] and few color names. Nil log discards warnings.
func ParseColor(s string, log *zap.Logger) Color {
	c, err := parseColor(s)
	if err != nil {
		if log == nil {
			log = zap.NewNop()
		}
		log.Warn("Unable to parse color, using black", zap.String("value", s), zap.Error(err))
		return Black
	}
	return c
}

func parseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb("):
		return parseRGB(s)
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return Black, fmt.Errorf("%w: %q", errUnknownClr, s)
}

func parseHex(s string) (Color, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Black, errBadHex
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Black, fmt.Errorf("bad hex color: %w", err)
		}
		ch[i] = uint8(v)
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}

func parseRGB(s string) (Color, error) {
	m := reRGB.FindStringSubmatch(s)
	if m == nil {
		return Black, errBadRGB
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Black, fmt.Errorf("%w: %w", errBadRGB, err)
		}
		ch[i] = uint8(min(max(v, 0), 255))
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}
