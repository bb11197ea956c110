package browser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/infrastructure/engine/memory"
)

func countingFactory(made *int) browser.SubscriptionFactory {
	return func(tab port.Tab) *browser.TabSubscription {
		*made++
		return browser.NewTabSubscription(tab, &port.TabCallbacks{}, &port.NavigationCallbacks{})
	}
}

func TestTabSubscriptions_RegisterIsIdempotent(t *testing.T) {
	b := memory.NewBrowser(memory.WithIDGenerator(memory.SequentialIDs("t")))
	tab := b.CreateTab().(*memory.Tab)

	made := 0
	subs := browser.NewTabSubscriptions(countingFactory(&made))

	assert.True(t, subs.Register(tab))
	assert.False(t, subs.Register(tab))
	assert.Equal(t, 1, made)

	tabCalls, navCalls := tab.CallbackCount()
	assert.Equal(t, 1, tabCalls)
	assert.Equal(t, 1, navCalls)
}

func TestTabSubscriptions_UnregisterTwiceIsSafe(t *testing.T) {
	b := memory.NewBrowser(memory.WithIDGenerator(memory.SequentialIDs("t")))
	tab := b.CreateTab().(*memory.Tab)

	made := 0
	subs := browser.NewTabSubscriptions(countingFactory(&made))
	subs.Register(tab)

	assert.True(t, subs.Unregister(tab.ID()))
	assert.False(t, subs.Unregister(tab.ID()))
	assert.False(t, subs.Has(tab.ID()))

	tabCalls, navCalls := tab.CallbackCount()
	assert.Zero(t, tabCalls)
	assert.Zero(t, navCalls)
}

func TestTabSubscriptions_CloseOnDestroyedTab(t *testing.T) {
	b := memory.NewBrowser(memory.WithIDGenerator(memory.SequentialIDs("t")))
	tab := b.CreateTab().(*memory.Tab)

	made := 0
	subs := browser.NewTabSubscriptions(countingFactory(&made))
	subs.Register(tab)
	tab.Close()

	assert.True(t, subs.Unregister(tab.ID()))
	assert.False(t, subs.Register(tab), "destroyed tabs are never subscribed")
	assert.Zero(t, subs.Len())
}
