package inspect

// controlGlyphs renders the 32 C0 control codes (0x00-0x1F) as the
// Code-Page-437-style single-character glyphs terminal
// hex-dump tools traditionally use for them, so a raw-byte render never
// has to emit an actual control character into the caller's terminal.
var controlGlyphs = [32]rune{
	'␀', '☺', '☻', '♥', '♦', '♣', '♠', '•',
	'◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨',
	'↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

// upperGlyphs renders DEL (0x7F) and every byte from 0x80 through 0xFF
// as its Code-Page-437 glyph, indexed by b-0x7F (129 entries).
var upperGlyphs = [129]rune{
	'⌂', 'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï',
	'î', 'ì', 'Ä', 'Å', 'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ',
	'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ', 'á', 'í', 'ó', 'ú', 'ñ', 'Ñ',
	'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»', '░', '▒', '▓',
	'│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠',
	'═', '╬', '╧', '╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘',
	'┌', '█', '▄', '▌', '▐', '▀', 'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ',
	'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩', '≡', '±', '≥', '≤',
	'⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

// glyphFor returns the printable rune used to represent byte b in a hex
// dump's ASCII gutter: the byte itself if printable, a control glyph for
// C0 controls, and the Code-Page-437 upper-half glyph for DEL and every
// byte from 0x80 through 0xFF.
func glyphFor(b byte) rune {
	switch {
	case b < 0x20:
		return controlGlyphs[b]
	case b < 0x7F:
		return rune(b)
	default:
		return upperGlyphs[int(b)-0x7F]
	}
}
