package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/patterns/core/pluggable"
)

type stool struct{}

func (stool) Name() string { return "stool" }

type stoolCreator struct{}

func (stoolCreator) CreateProduct() Product { return stool{} }

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Product is chair", Describe(ChairCreator{}))
	assert.Equal(t, "Product is table", Describe(TableCreator{}))
	assert.Equal(t, "Product is stool", Describe(stoolCreator{}))
}

func TestSelector(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)

	c, err := sel.Select("table")
	require.NoError(t, err)
	assert.IsType(t, TableCreator{}, c)
	assert.Equal(t, "table", c.CreateProduct().Name())

	_, err = sel.Select("sofa")
	assert.ErrorIs(t, err, pluggable.ErrUnknownKey)
}
