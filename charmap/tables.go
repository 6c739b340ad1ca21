// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charmap

import (
	"unicode/utf8"

	encoding "github.com/michaelsproul/go-encoding"
)

// none marks a byte with no assigned character. The C1 control range
// 0x80-0x9F of the ISO 8859 sets is deliberately left unassigned.
const none = utf8.RuneError

// ISO8859_2 is the ISO 8859-2 (Latin-2) encoding.
var ISO8859_2 = New("ISO 8859-2", [128]rune{
	none, none, none, none, none, none, none, none,
	none, none, none, none, none, none, none, none,
	none, none, none, none, none, none, none, none,
	none, none, none, none, none, none, none, none,
	' ', 'Ą', '˘', 'Ł', '¤', 'Ľ', 'Ś', '§',
	'¨', 'Š', 'Ş', 'Ť', 'Ź', '­', 'Ž', 'Ż',
	'°', 'ą', '˛', 'ł', '´', 'ľ', 'ś', 'ˇ',
	'¸', 'š', 'ş', 'ť', 'ź', '˝', 'ž', 'ż',
	'Ŕ', 'Á', 'Â', 'Ă', 'Ä', 'Ĺ', 'Ć', 'Ç',
	'Č', 'É', 'Ę', 'Ë', 'Ě', 'Í', 'Î', 'Ď',
	'Đ', 'Ń', 'Ň', 'Ó', 'Ô', 'Ő', 'Ö', '×',
	'Ř', 'Ů', 'Ú', 'Ű', 'Ü', 'Ý', 'Ţ', 'ß',
	'ŕ', 'á', 'â', 'ă', 'ä', 'ĺ', 'ć', 'ç',
	'č', 'é', 'ę', 'ë', 'ě', 'í', 'î', 'ď',
	'đ', 'ń', 'ň', 'ó', 'ô', 'ő', 'ö', '÷',
	'ř', 'ů', 'ú', 'ű', 'ü', 'ý', 'ţ', '˙',
})

// Windows1252 is the Windows 1252 encoding.
var Windows1252 = New("Windows 1252", [128]rune{
	'€', none, '‚', 'ƒ', '„', '…', '†', '‡',
	'ˆ', '‰', 'Š', '‹', 'Œ', none, 'Ž', none,
	none, '‘', '’', '“', '”', '•', '–', '—',
	'˜', '™', 'š', '›', 'œ', none, 'ž', 'Ÿ',
	' ', '¡', '¢', '£', '¤', '¥', '¦', '§',
	'¨', '©', 'ª', '«', '¬', '­', '®', '¯',
	'°', '±', '²', '³', '´', 'µ', '¶', '·',
	'¸', '¹', 'º', '»', '¼', '½', '¾', '¿',
	'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç',
	'È', 'É', 'Ê', 'Ë', 'Ì', 'Í', 'Î', 'Ï',
	'Ð', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', '×',
	'Ø', 'Ù', 'Ú', 'Û', 'Ü', 'Ý', 'Þ', 'ß',
	'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç',
	'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï',
	'ð', 'ñ', 'ò', 'ó', 'ô', 'õ', 'ö', '÷',
	'ø', 'ù', 'ú', 'û', 'ü', 'ý', 'þ', 'ÿ',
})

func init() {
	encoding.Register(ISO8859_2, "iso-8859-2", "iso8859-2", "latin2", "l2")
	encoding.Register(Windows1252, "windows-1252", "cp1252", "x-cp1252")
}
