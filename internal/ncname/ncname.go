// Package ncname implements the XML non-colonized name grammar used for the
// local part of qualified names (NCName, XML Namespaces 1.0).
package ncname

// Valid reports whether s is a valid NCName: non-empty, starting with an
// NCNameStartChar, with every following rune an NCNameChar. Colons are
// excluded everywhere.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isStartChar(r) {
				return false
			}
			continue
		}
		if !isChar(r) {
			return false
		}
	}
	return true
}

// isStartChar reports whether r may begin an NCName
// (NameStartChar from XML 1.0 fifth edition, minus the colon).
func isStartChar(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

// isChar reports whether r may appear after the first rune of an NCName.
func isChar(r rune) bool {
	return isStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
