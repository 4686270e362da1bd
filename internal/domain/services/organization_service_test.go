package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"directory-http-service/internal/domain/models"
	"directory-http-service/pkg/geo"
)

func newOrganizationServiceForTest(db *gorm.DB) InterfaceOrganizationService {
	return NewOrganizationService(db, testConfig, NewActivityService(db, testConfig))
}

func TestGetOrganizationByID(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	id := organizationIDByName(t, db, "Рога и Копыта")
	org, err := service.GetOrganizationByID(id)
	require.NoError(t, err)

	require.Contains(t, org.Name, "Рога и Копыта")
	require.Contains(t, org.Building.Address, "Ленина")
	require.Len(t, org.Phones, 2)
	require.Len(t, org.Activities, 2)
}

func TestGetOrganizationByIDNotFound(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	org, err := service.GetOrganizationByID(99999)
	require.ErrorIs(t, err, ErrOrganizationNotFound)
	require.Nil(t, org)
}

func TestGetByBuilding(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	buildingID := buildingIDByAddress(t, db, "Ленина")
	orgs, total, err := service.GetByBuilding(buildingID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	names := organizationNames(orgs)
	require.Contains(t, names, `ООО "Рога и Копыта"`)
	require.Contains(t, names, `ООО "Молочный мир"`)
}

func TestGetByBuildingUnknownID(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// 不存在的楼宇是合法的过滤条件：空列表，不是错误
	orgs, total, err := service.GetByBuilding(99999, 20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orgs)
}

func TestGetByActivityDirectOnly(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// 4个组织直接关联"Молочная продукция"
	dairyID := activityIDByName(t, db, "Молочная продукция")
	orgs, total, err := service.GetByActivity(dairyID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Len(t, orgs, 4)

	// 父活动"Еда"没有直接关联的组织：不展开子活动
	foodID := activityIDByName(t, db, "Еда")
	orgs, total, err = service.GetByActivity(foodID, 20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orgs)
}

func TestGetByActivityPagination(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	dairyID := activityIDByName(t, db, "Молочная продукция")

	firstPage, total, err := service.GetByActivity(dairyID, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Len(t, firstPage, 1)

	secondPage, total, err := service.GetByActivity(dairyID, 1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Len(t, secondPage, 1)

	// 按ID排序保证翻页稳定，两页不重叠
	require.Less(t, firstPage[0].ID, secondPage[0].ID)
}

func TestSearchByActivityTree(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// "Еда"展开为 Мясная + Молочная + Выпечка，合计6个组织
	foodID := activityIDByName(t, db, "Еда")
	orgs, total, err := service.SearchByActivityTree(foodID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(6), total)
	require.Len(t, orgs, 6)

	// "Невский Гурман"关联全部3个子活动，结果中只出现一次
	seen := make(map[uint]bool, len(orgs))
	for _, org := range orgs {
		require.False(t, seen[org.ID], "组织 %d 重复出现", org.ID)
		seen[org.ID] = true
	}
	require.Contains(t, organizationNames(orgs), `ООО "Невский Гурман"`)
}

func TestSearchByActivityTreeMidLevel(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// "Легковые" + Запчасти + Аксессуары
	passengerID := activityIDByName(t, db, "Легковые")
	orgs, total, err := service.SearchByActivityTree(passengerID, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	names := organizationNames(orgs)
	require.Contains(t, names, `ООО "АвтоПлюс"`)
	require.Contains(t, names, `ООО "Запчасти24"`)
	require.Contains(t, names, `ООО "СибАвто"`)
}

func TestSearchByActivityTreeUnknownActivity(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	orgs, total, err := service.SearchByActivityTree(99999, 20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orgs)
}

func TestSearchByName(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	orgs, total, err := service.SearchByName("Авто", 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	names := organizationNames(orgs)
	require.Contains(t, names, `ООО "АвтоПлюс"`)
	require.Contains(t, names, `ООО "ГрузАвто"`)
	require.Contains(t, names, `ООО "СибАвто"`)
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	building := buildingIDByAddress(t, db, "Ленина")
	require.NoError(t, db.Create(&models.Organization{
		Name:       "Tech Lab Ltd",
		BuildingID: building,
	}).Error)

	orgs, total, err := service.SearchByName("tech lab", 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Tech Lab Ltd", orgs[0].Name)
}

func TestSearchByNameNoMatch(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	orgs, total, err := service.SearchByName("не существует", 20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orgs)
}

func TestSearchInRadius(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	const centerLat, centerLng = 55.7558, 37.6173 // 楼宇"Ленина 1"的坐标

	// 100米：仅中心楼宇内的2个组织
	_, total, err := service.SearchInRadius(centerLat, centerLng, 100, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	// 1000米：加上485米外"Пушкина 5"内的2个组织
	orgs, total, err := service.SearchInRadius(centerLat, centerLng, 1000, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)

	// 2500米：再加上1932米外"пр. Мира"内的1个组织
	_, total, err = service.SearchInRadius(centerLat, centerLng, 2500, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)

	// 每个结果的楼宇必须确实在半径内
	for _, org := range orgs {
		var building models.Building
		require.NoError(t, db.First(&building, org.BuildingID).Error)
		require.LessOrEqual(t,
			geo.Distance(centerLat, centerLng, building.Latitude, building.Longitude),
			1000.0)
	}
}

// 连接查询的计数路径：total 必须来自不带列投影的COUNT，
// 取页小于总数时计数不受limit影响
func TestJoinedQueriesCountFullSet(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// 半径搜索：组织↔楼宇连接 + 地理谓词
	orgs, total, err := service.SearchInRadius(55.7558, 37.6173, 1000, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Len(t, orgs, 1)

	// 矩形搜索：同一连接，范围谓词
	orgs, total, err = service.SearchInRectangle(55.70, 55.78, 37.55, 37.65, 2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, orgs, 2)

	// 按活动过滤：组织↔活动连接
	dairyID := activityIDByName(t, db, "Молочная продукция")
	orgs, total, err = service.GetByActivity(dairyID, 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Len(t, orgs, 2)
}

func TestSearchInRadiusExcludesBBoxCorners(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// 1940米刚好覆盖"пр. Мира"（1932米），但bbox的四角超出圆形：
	// 精确距离过滤必须剔除bbox内圆外的楼宇
	building := models.Building{
		Address:   "bbox角落测试点",
		Latitude:  55.7558 + 0.0174, // 东北角方向，bbox内但距中心约2717米
		Longitude: 37.6173 + 0.0305,
	}
	require.NoError(t, db.Create(&building).Error)
	require.NoError(t, db.Create(&models.Organization{
		Name:       "Угловая компания",
		BuildingID: building.ID,
	}).Error)

	orgs, total, err := service.SearchInRadius(55.7558, 37.6173, 1940, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.NotContains(t, organizationNames(orgs), "Угловая компания")
}

func TestSearchInRadiusAntimeridian(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	east := models.Building{Address: "东侧测试点", Latitude: 0, Longitude: 179.9}
	west := models.Building{Address: "西侧测试点", Latitude: 0, Longitude: -179.9}
	require.NoError(t, db.Create(&east).Error)
	require.NoError(t, db.Create(&west).Error)
	require.NoError(t, db.Create(&models.Organization{Name: "Восточная Ко", BuildingID: east.ID}).Error)
	require.NoError(t, db.Create(&models.Organization{Name: "Западная Ко", BuildingID: west.ID}).Error)

	// 两点隔 ±180 经线相距约22.2公里：50公里半径必须同时找到两者
	orgs, total, err := service.SearchInRadius(0, 179.9, 50000, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.ElementsMatch(t, []string{"Восточная Ко", "Западная Ко"}, organizationNames(orgs))

	// 10公里半径：缝隙另一侧的点超出范围
	orgs, total, err = service.SearchInRadius(0, 179.9, 10000, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Восточная Ко", orgs[0].Name)
}

func TestSearchInRadiusNearPole(t *testing.T) {
	db := setupTestDB(t)
	service := newOrganizationServiceForTest(db)

	// 89.9999°纬度上经度差异巨大的三个点实际相距仅几十米
	for i, lng := range []float64{-179, 0, 179} {
		building := models.Building{
			Address:   fmt.Sprintf("极地测试点 %d", i+1),
			Latitude:  89.9999,
			Longitude: lng,
		}
		require.NoError(t, db.Create(&building).Error)
		require.NoError(t, db.Create(&models.Organization{
			Name:       fmt.Sprintf("Полярная Ко %d", i+1),
			BuildingID: building.ID,
		}).Error)
	}

	_, total, err := service.SearchInRadius(89.9999, 10, 1000, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}

func TestSearchInRectangle(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	// 覆盖莫斯科3栋楼宇的矩形：共5个组织
	orgs, total, err := service.SearchInRectangle(55.70, 55.78, 37.55, 37.65, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, orgs, 5)

	// 只覆盖"Ленина 1"的窄矩形
	_, total, err = service.SearchInRectangle(55.750, 55.757, 37.61, 37.62, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
}

func TestSearchInRectangleEmptyArea(t *testing.T) {
	db := setupSeededDB(t)
	service := newOrganizationServiceForTest(db)

	orgs, total, err := service.SearchInRectangle(10, 11, 10, 11, 20, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, orgs)
}
