package window

import "math"

var posInf = math.Inf(1)

// FillPsiInstallTable expands a ragged table of psi-install values (one row
// per aperture, one column per edge) to n complete rows. Short rows repeat
// their last value across the remaining edges; missing or empty rows repeat
// the previous row. It returns nil when the table holds no values.
func FillPsiInstallTable(table [][]float64, n int) [][4]float64 {
	first := -1
	for i, row := range table {
		if len(row) > 0 {
			first = i
			break
		}
	}
	if first < 0 || n <= 0 {
		return nil
	}

	out := make([][4]float64, n)
	prev := expandRow(table[first])
	for i := range out {
		if i < len(table) && len(table[i]) > 0 {
			prev = expandRow(table[i])
		}
		out[i] = prev
	}
	return out
}

func expandRow(row []float64) [4]float64 {
	var r [4]float64
	for j := range r {
		if j < len(row) {
			r[j] = row[j]
		} else {
			r[j] = row[len(row)-1]
		}
	}
	return r
}
