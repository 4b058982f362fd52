package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchStats_Add(t *testing.T) {
	total := BatchStats{}
	total.Add(BatchStats{ItemsScanned: 100, StoriesFound: 20, StoriesNew: 15})
	total.Add(BatchStats{ItemsScanned: 50, StoriesFound: 5, StoriesNew: 5, ReachedTargetDate: true})
	total.Add(BatchStats{ItemsScanned: 10})

	assert.Equal(t, 160, total.ItemsScanned)
	assert.Equal(t, 25, total.StoriesFound)
	assert.Equal(t, 20, total.StoriesNew)
	assert.True(t, total.ReachedTargetDate, "target flag sticks once set")
}
