package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPersistedData_MapRoundTrip(t *testing.T) {
	p := entity.PersistedData{
		ParentTabID:   "tab-1",
		ParentSpaceID: "space-9",
		LastActiveMs:  1700000000000,
		OpenType:      entity.OpenTypeChildTab,
	}

	m := p.ToMap()
	assert.Equal(t, "tab-1", m[entity.PersistedKeyParentTabID])
	assert.Equal(t, "space-9", m[entity.PersistedKeyParentSpaceID])
	assert.Equal(t, "1700000000000", m[entity.PersistedKeyLastActiveMs])
	assert.Equal(t, "ChildTab", m[entity.PersistedKeyOpenType])

	assert.Equal(t, p, entity.PersistedDataFromMap(m))
}

func TestPersistedData_ToMapOmitsEmptyParents(t *testing.T) {
	m := entity.PersistedData{OpenType: entity.OpenTypeViaIntent}.ToMap()
	assert.NotContains(t, m, entity.PersistedKeyParentTabID)
	assert.NotContains(t, m, entity.PersistedKeyParentSpaceID)
	assert.Equal(t, "ViaIntent", m[entity.PersistedKeyOpenType])
}

func TestPersistedDataFromMap_Malformed(t *testing.T) {
	p := entity.PersistedDataFromMap(map[string]string{
		entity.PersistedKeyLastActiveMs: "yesterday",
		entity.PersistedKeyOpenType:     "Sideways",
	})
	assert.Equal(t, int64(0), p.LastActiveMs)
	assert.Equal(t, entity.OpenTypeDefault, p.OpenType)

	assert.Equal(t, entity.PersistedData{}, entity.PersistedDataFromMap(nil))
}

func TestNewPersistedData(t *testing.T) {
	now := time.UnixMilli(42_000)
	p := entity.NewPersistedData("parent", "", entity.OpenTypeChildTab, now)
	assert.Equal(t, int64(42_000), p.LastActiveMs)
	assert.True(t, p.LastActive().Equal(now))
}
