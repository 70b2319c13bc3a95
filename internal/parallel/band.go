package parallel

// Band is a horizontal strip of pixel rows rendered by one work item.
type Band struct {
	// Y0 is the first row, inclusive.
	Y0 int
	// Y1 is the last row, exclusive.
	Y1 int
}

// bandRows is the preferred band height. Small enough that a frame
// produces several bands per worker for stealing to balance, large
// enough that closure dispatch overhead stays negligible.
const bandRows = 16

// SplitBands partitions height rows into bands of at most bandRows rows.
// A non-positive height yields no bands.
func SplitBands(height int) []Band {
	if height <= 0 {
		return nil
	}
	bands := make([]Band, 0, (height+bandRows-1)/bandRows)
	for y := 0; y < height; y += bandRows {
		y1 := y + bandRows
		if y1 > height {
			y1 = height
		}
		bands = append(bands, Band{Y0: y, Y1: y1})
	}
	return bands
}
