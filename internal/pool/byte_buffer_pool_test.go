package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Empty(t, bb.B)
	require.Equal(t, 64, cap(bb.B))

	bb.B = append(bb.B, "hello"...)
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Empty(t, bb.B)
	require.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetLength(8)
	require.Len(t, bb.B, 8)

	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, "12345678"...)

	bb.Grow(100)
	require.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 100)
	require.Equal(t, []byte("12345678"), bb.Bytes())

	// No-op when capacity is already sufficient
	capBefore := cap(bb.B)
	bb.Grow(1)
	require.Equal(t, capBefore, cap(bb.B))
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, "data"...)
	p.Put(bb)

	// Returned buffers come back reset
	bb2 := p.Get()
	require.Empty(t, bb2.B)

	// Nil put is a no-op
	p.Put(nil)
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // exceeds threshold, dropped

	bb2 := p.Get()
	require.LessOrEqual(t, cap(bb2.B), 1024)
}

func TestGetChunkBuffer(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	require.Empty(t, bb.B)
	bb.B = append(bb.B, 'x')
	PutChunkBuffer(bb)
}
