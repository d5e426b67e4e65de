package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewFakeClock()

	var order []string
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"early"}, order)
	assert.Equal(t, 1, c.Pending())

	c.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, 30*time.Millisecond, c.Now())
}

func TestFakeClock_Stop(t *testing.T) {
	c := NewFakeClock()

	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Second)

	assert.False(t, fired)
	assert.Equal(t, 1, c.Scheduled)
}
