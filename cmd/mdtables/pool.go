package main

import (
	"context"

	"github.com/alnah/go-mdtables"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdtables.Input) (*mdtables.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdtables.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts mdtables.ConverterPool to Pool.
type converterPool struct {
	pool *mdtables.ConverterPool
}

func newConverterPool(size int, opts ...mdtables.Option) Pool {
	return &converterPool{pool: mdtables.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (CLIConverter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(conv CLIConverter) {
	if c, ok := conv.(*mdtables.Converter); ok {
		p.pool.Release(c)
	}
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

func (p *converterPool) Close() error {
	return p.pool.Close()
}
