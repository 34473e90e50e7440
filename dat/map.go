package dat

// PagedMapBMP maps BMP code points (0..65535) to dense alphabet IDs.
// Pattern alphabets are small and clustered (Latin, Latin-1 supplement,
// Cyrillic, ...), so a two-level page table keeps the mapping compact:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Memory is 512 bytes for Top plus 512 bytes per populated page.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a BMP code unit.
// Returns 0 if absent.
func (m *PagedMapBMP) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// Lookup is Dense for runes. Runes outside the BMP are never mapped.
func (m *PagedMapBMP) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return m.Dense(uint16(r))
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// ensurePage returns the 1-based page index for high byte hi, allocating
// the page if necessary.
func (m *PagedMapBMP) ensurePage(hi uint16) uint16 {
	if pi := m.Top[hi]; pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi := uint16(m.NumPages())
	m.Top[hi] = pi
	return pi
}

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *PagedMapBMP) Set(bmp uint16, dense uint16) {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = m.ensurePage(bmp >> 8)
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = dense
}
