package xmlname_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jacoelho/xmlname"
)

func TestNamespaceConcurrentInterning(t *testing.T) {
	reg := xmlname.NewRegistry()

	const goroutines = 16
	const iterations = 100

	handles := make(chan *xmlname.Namespace, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				handles <- reg.Namespace("urn:a")
			}
		}()
	}
	wg.Wait()
	close(handles)

	want := reg.Namespace("urn:a")
	for ns := range handles {
		if ns != want {
			t.Fatalf("concurrent Namespace() observed handle %p, want %p", ns, want)
		}
	}
}

func TestNameConcurrentInterning(t *testing.T) {
	reg := xmlname.NewRegistry()

	const goroutines = 16
	const locals = 8

	type result struct {
		expanded string
		name     *xmlname.Name
	}

	results := make(chan result, goroutines*locals)
	errCh := make(chan error, goroutines*locals)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < locals; j++ {
				expanded := fmt.Sprintf("{urn:test}local%d", j)
				n, err := reg.Parse(expanded)
				if err != nil {
					errCh <- err
					return
				}
				results <- result{expanded: expanded, name: n}
			}
		}()
	}
	wg.Wait()
	close(results)
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent Parse error: %v", err)
	}

	seen := make(map[string]*xmlname.Name)
	for r := range results {
		if prev, ok := seen[r.expanded]; ok && prev != r.name {
			t.Fatalf("concurrent Parse(%q) observed two handles %p and %p", r.expanded, prev, r.name)
		}
		seen[r.expanded] = r.name
	}
	if len(seen) != locals {
		t.Fatalf("distinct names = %d, want %d", len(seen), locals)
	}
}
