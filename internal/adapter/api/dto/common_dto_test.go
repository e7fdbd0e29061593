package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	p := GetPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	p = GetPagination(3, 250)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PageSize)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, calculateTotalPages(0, 10))
	assert.Equal(t, 1, calculateTotalPages(10, 10))
	assert.Equal(t, 2, calculateTotalPages(11, 10))
	assert.Equal(t, 0, calculateTotalPages(10, 0))
}
