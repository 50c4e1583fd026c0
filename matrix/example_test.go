package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/matrix"
)

// ExampleDense_RowArgMax shows the first-maximum tie rule used by greedy routing.
func ExampleDense_RowArgMax() {
	// Row 0 has a tie between columns 1 and 2; the lower index wins.
	m, err := matrix.FromRows([][]float64{
		{0, 4, 4},
		{1, 0, 0},
		{0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < m.Rows(); i++ {
		j, _ := m.RowArgMax(i)
		fmt.Printf("row %d -> col %d\n", i, j)
	}
	// Output:
	// row 0 -> col 1
	// row 1 -> col 0
	// row 2 -> col 0
}
