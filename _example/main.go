package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/hypergo"
	"github.com/hupe1980/hypergo/testutil"
)

func main() {
	seed := int64(4711)
	size := 50000

	h := hypergo.New[int]()

	fmt.Println("--- Populate ---")
	fmt.Println("Nodes:", size)
	fmt.Println("Edges:", size/4)

	start := time.Now()

	if _, err := testutil.Populate(testutil.NewRNG(seed), h.Graph(), testutil.Shape{
		Nodes:  size,
		Edges:  size / 4,
		Graphs: 8,
		Nested: &testutil.Shape{Nodes: 256, Edges: 64},
	}); err != nil {
		log.Fatal(err)
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	stats := h.Stats()
	fmt.Printf("Stats: %+v\n\n", stats)

	fmt.Println("--- Validate ---")

	start = time.Now()

	if err := h.Validate(context.Background()); err != nil {
		log.Fatal(err)
	}

	end = time.Since(start)

	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	fmt.Println("--- Walk ---")

	start = time.Now()

	walker := h.WalkIDs()
	count := 0

	for {
		if _, ok := walker.Next(); !ok {
			break
		}

		count++
	}

	end = time.Since(start)

	fmt.Println("Visited:", count)
	fmt.Printf("Seconds: %.2f\n", end.Seconds())
}
