package main

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSizeTracker(t *testing.T) {
	st := newSizeTracker(80, 24)

	w, h, err := st.getSize()
	assert.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	st.update(120, 40)
	w, h, _ = st.getSize()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestWaitTimeout(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	start := time.Now()
	waitTimeout(&wg, 20*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond, "gives up after the timeout")

	wg.Done()
	start = time.Now()
	waitTimeout(&wg, time.Second)
	assert.Less(t, time.Since(start), time.Second)
}
