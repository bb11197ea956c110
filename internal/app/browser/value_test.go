package browser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabshell/internal/app/browser"
)

func TestValue_SetNotifiesOnChangeOnly(t *testing.T) {
	v := browser.NewValue(1)
	var got []int
	v.Subscribe(func(n int) { got = append(got, n) })

	assert.True(t, v.Set(2))
	assert.False(t, v.Set(2))
	assert.True(t, v.Set(3))

	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, 3, v.Get())
}

func TestValue_Unsubscribe(t *testing.T) {
	v := browser.NewValue("a")
	calls := 0
	unsubscribe := v.Subscribe(func(string) { calls++ })

	v.Set("b")
	unsubscribe()
	unsubscribe()
	v.Set("c")

	assert.Equal(t, 1, calls)
}

func TestValue_CustomEquality(t *testing.T) {
	v := browser.NewValueFunc([]int{1, 2}, func(a, b []int) bool { return len(a) == len(b) })
	assert.False(t, v.Set([]int{3, 4}))
	assert.True(t, v.Set([]int{1}))
}
