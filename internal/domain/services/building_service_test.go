package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllBuildings(t *testing.T) {
	db := setupSeededDB(t)
	service := NewBuildingService(db, testConfig)

	buildings, total, err := service.GetAllBuildings(20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, buildings, 7)

	// 按ID排序保证翻页稳定
	for i := 1; i < len(buildings); i++ {
		require.Less(t, buildings[i-1].ID, buildings[i].ID)
	}
}

func TestGetAllBuildingsPagination(t *testing.T) {
	db := setupSeededDB(t)
	service := NewBuildingService(db, testConfig)

	firstPage, total, err := service.GetAllBuildings(3, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, firstPage, 3)

	lastPage, total, err := service.GetAllBuildings(3, 6)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, lastPage, 1)
}

func TestGetAllBuildingsEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	service := NewBuildingService(db, testConfig)

	buildings, total, err := service.GetAllBuildings(20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, buildings)
}
