package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	assert.True(s.empty())
	assert.False(s.full())

	s.push(0x1234)
	assert.False(s.empty())
	assert.Equal(uint16(1), s.sp)
}

func TestDataStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	s.push(0x1234)
	s.push(0xABCD)

	val, ok := s.pop()
	assert.True(ok)
	assert.Equal(uint16(0xABCD), val)

	val, ok = s.pop()
	assert.True(ok)
	assert.Equal(uint16(0x1234), val)
}

func TestDataStack_PopEmpty(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	val, ok := s.pop()
	assert.False(ok)
	assert.Equal(uint16(0), val)
}

func TestDataStack_PeekDepth(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	s.push(1)
	s.push(2)
	s.push(3)

	top, ok := s.peek(0)
	assert.True(ok)
	assert.Equal(uint16(3), top)

	below, ok := s.peek(1)
	assert.True(ok)
	assert.Equal(uint16(2), below)

	_, ok = s.peek(3)
	assert.False(ok)
}

func TestDataStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	for i := 0; i < stackLimit; i++ {
		assert.False(s.full())
		s.push(uint16(i))
	}
	assert.True(s.full())
}

func TestDataStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &dataStack{}
	s.push(1)
	s.push(2)

	s.reset()
	assert.True(s.empty())
	assert.Equal(uint16(0), s.sp)
}
