package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Generates a pair of sample matrix files compatible for every
// operation (both square, same shape), plus one deliberately broken
// file for exercising the error paths.
func main() {
	dir := "sample_data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", dir, err)
	}

	rng := rand.New(rand.NewSource(1))

	for _, name := range []string{"matrix_a.txt", "matrix_b.txt"} {
		var b strings.Builder
		fmt.Fprintf(&b, "rows=%d\ncols=%d\n", 8, 8)
		for i := 0; i < 12; i++ {
			fmt.Fprintf(&b, "(%d, %d, %d)\n", rng.Intn(8), rng.Intn(8), rng.Intn(41)-20)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.TrimSpace(b.String())), 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	broken := filepath.Join(dir, "matrix_broken.txt")
	if err := os.WriteFile(broken, []byte("rows=3\ncols=3\n(1, 2)"), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", broken, err)
	}
	fmt.Printf("wrote %s (malformed entry on line 3)\n", broken)
}
