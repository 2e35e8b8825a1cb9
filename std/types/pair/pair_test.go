package pair_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/zjkmxy/ownd/std/types/pair"
)

type stateless struct{}

func TestPairAccess(t *testing.T) {
	p := pair.New(1, "one")
	require.Equal(t, 1, *p.First())
	require.Equal(t, "one", *p.Second())

	*p.First() = 2
	*p.Second() = "two"
	require.Equal(t, 2, *p.First())
	require.Equal(t, "two", *p.Second())

	var zero pair.Pair[int, []byte]
	require.Equal(t, 0, *zero.First())
	require.Nil(t, *zero.Second())
}

func TestPairEmptyFirstIsFree(t *testing.T) {
	var p pair.Pair[stateless, *int]
	require.Equal(t, unsafe.Sizeof((*int)(nil)), unsafe.Sizeof(p))

	var q pair.Pair[stateless, stateless]
	require.Equal(t, uintptr(0), unsafe.Sizeof(q))
}
