// Package utils holds helpers shared by tests.
package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

func SetT(t *testing.T) {
	testT = t
}

func NoErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

func Err[T any](_ T, err error) error {
	require.Error(testT, err)
	return err
}

// Destructions counts Destroy calls on a family of Tracked values.
type Destructions struct {
	n atomic.Int32
}

// Count returns the number of Destroy calls so far.
func (d *Destructions) Count() int {
	return int(d.n.Load())
}

// Tracked is a test object that records its destruction.
type Tracked struct {
	Value int
	Field string
	log   *Destructions
}

// NewTracked returns a Tracked that reports to d.
func NewTracked(d *Destructions, value int) *Tracked {
	return &Tracked{Value: value, log: d}
}

// Bind attaches d to an in-place constructed Tracked.
func (t *Tracked) Bind(d *Destructions, value int) {
	t.Value = value
	t.log = d
}

func (t *Tracked) Destroy() {
	if t.log != nil {
		t.log.n.Add(1)
	}
}
