package browser_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabshell/internal/app/browser"
)

func TestBackground_WaitAndErrors(t *testing.T) {
	bg := browser.NewBackground(testContext())
	var mu sync.Mutex
	ran := 0
	for range 5 {
		bg.Go("count", func(context.Context) error {
			mu.Lock()
			ran++
			mu.Unlock()
			return nil
		})
	}
	bg.Go("fail", func(context.Context) error { return errors.New("disk full") })
	bg.Wait()

	assert.Equal(t, 5, ran)
}

func TestSerialQueue_RunsInOrder(t *testing.T) {
	bg := browser.NewBackground(testContext())
	q := bg.Serial()

	var mu sync.Mutex
	var order []int
	for i := range 20 {
		q.Go("append", func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}
	bg.Wait()

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, order)
}
