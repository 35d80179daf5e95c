package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening input file %q", path)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating output file %q", path)
	}
	return f, func() { f.Close() }, nil
}
