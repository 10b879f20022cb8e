package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sisl/smile-go/pkg/smile"
	"github.com/sisl/smile-go/pkg/smile/fixture"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration")
	fixturePath := flag.String("fixture", "", "Path to YAML node value fixture to inspect")
	flag.Parse()

	log.Printf("smile-go version: %s", smile.WrapperVersion())
	log.Printf("smile upstream: %s", smile.UpstreamVersion())

	cfg := &smile.Config{}
	if *configPath != "" {
		loaded, err := smile.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	reg := cfg.NewRegistry()
	lib, err := smile.Open(*cfg)
	switch {
	case err == nil:
		defer func() {
			if cerr := lib.Close(); cerr != nil {
				log.Printf("close error: %v", cerr)
			}
		}()
		reg = lib.Registry()
		fmt.Println("native engine linked")
	case errors.Is(err, smile.ErrCGONotEnabled) || errors.Is(err, smile.ErrNotBuilt):
		fmt.Printf("native engine unavailable: %v\n", err)
	default:
		log.Fatalf("unexpected failure opening library: %v", err)
	}

	if *fixturePath == "" {
		return
	}
	if err := inspect(os.Stdout, reg, *fixturePath); err != nil {
		log.Fatalf("inspect fixture: %v", err)
	}
}

// inspect registers every fixture node and prints what the two node value
// adapters report for it.
func inspect(w io.Writer, reg *smile.Registry, path string) error {
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}
	nodes, err := f.Build()
	if err != nil {
		return err
	}

	for _, name := range f.Names() {
		h, err := reg.RegisterNodeValue(nodes[name])
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
		size, err := reg.NodeValueGetSize(h)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		mh, err := reg.NodeValueGetMatrix(h)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		values := make([]float64, 0, size)
		for i := 0; i < size; i++ {
			v, err := reg.MatrixAt(mh, i)
			if err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			values = append(values, v)
		}
		fmt.Fprintf(w, "%s\t%s\tsize=%d\tmatrix=%s\t%v\n", name, h, size, mh, values)

		if err := reg.Release(h); err != nil {
			return fmt.Errorf("release %s: %w", name, err)
		}
	}
	return nil
}
