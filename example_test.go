package tilescan_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/tilescan"
)

func Example() {
	// 2-dimensional points, 4 points per tile, 1 tile.
	s, err := tilescan.New(2, 4, 1)
	if err != nil {
		log.Fatal(err)
	}

	query := []float32{0, 0}
	space := []float32{
		1, 0,
		0, 1,
		3, 4,
		0, 0,
	}
	out := make([]float32, s.Layout().Points())

	if err := s.Scan(context.Background(), query, space, out); err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output: [1 1 25 0]
}
