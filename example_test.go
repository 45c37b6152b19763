package hypergo_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hypergo"
)

func Example() {
	h := hypergo.New[string]()

	alice, err := h.AddNode("alice")
	if err != nil {
		log.Fatal(err)
	}

	bob, err := h.AddNode("bob")
	if err != nil {
		log.Fatal(err)
	}

	knows, err := h.AddEdge(alice, bob, "knows")
	if err != nil {
		log.Fatal(err)
	}

	walker, err := h.Neighbors(alice)
	if err != nil {
		log.Fatal(err)
	}

	for {
		neighbor, ok := walker.Next()
		if !ok {
			break
		}

		value, err := h.EdgeValue(neighbor)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s -> %s (%s)\n", alice, neighbor, value)
	}

	_ = knows

	// Output:
	// [0] -> [2] (knows)
}

func Example_snapshot() {
	ctx := context.Background()

	h := hypergo.New[string]()

	if _, err := h.AddNode("persisted"); err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := h.SaveSnapshot(ctx, &buf); err != nil {
		log.Fatal(err)
	}

	restored, err := hypergo.LoadSnapshot[string](ctx, &buf)
	if err != nil {
		log.Fatal(err)
	}

	stats := restored.Stats()

	fmt.Println(stats.Nodes)

	// Output:
	// 1
}
