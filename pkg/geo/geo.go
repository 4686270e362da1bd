// Package geo 提供圆形地理搜索所需的计算：bounding box 预过滤与 Haversine 精确距离。
package geo

import (
	"math"

	"gorm.io/gorm"
)

// EarthRadiusMeters 地球半径（球体模型），单位米
const EarthRadiusMeters = 6371000.0

// cos(lat) 低于该阈值时视为极点，经度无法约束圆形范围
const poleCosThreshold = 1e-10

// BBox 表示经纬度范围。LngMin > LngMax 时表示范围跨越 ±180 经线，
// 此时经度条件为 "longitude >= LngMin OR longitude <= LngMax"，而不是空范围。
type BBox struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// WrapsAntimeridian 范围是否跨越 ±180 经线
func (b BBox) WrapsAntimeridian() bool {
	return b.LngMin > b.LngMax
}

// Contains 判断坐标是否落在范围内（含边界）
func (b BBox) Contains(lat, lng float64) bool {
	if lat < b.LatMin || lat > b.LatMax {
		return false
	}
	if b.WrapsAntimeridian() {
		return lng >= b.LngMin || lng <= b.LngMax
	}
	return lng >= b.LngMin && lng <= b.LngMax
}

// ComputeBBox 计算以 (lat, lng) 为中心、radiusMeters 为半径的圆的外接经纬度范围。
// 处理两个边界情况：
//   - 极点附近（cos(lat) < 1e-10）：经度无法约束圆形，返回完整经度范围 [-180, 180]；
//   - 跨越 ±180 经线：lng_min < -180 加 360，lng_max > 180 减 360，
//     结果可能出现 LngMin > LngMax，调用方必须按“跨经线”处理。
func ComputeBBox(lat, lng, radiusMeters float64) BBox {
	deltaLat := degrees(radiusMeters / EarthRadiusMeters)

	latMin := math.Max(lat-deltaLat, -90)
	latMax := math.Min(lat+deltaLat, 90)

	cosLat := math.Cos(radians(lat))
	if cosLat < poleCosThreshold {
		return BBox{LatMin: latMin, LatMax: latMax, LngMin: -180, LngMax: 180}
	}

	deltaLng := degrees(radiusMeters / (EarthRadiusMeters * cosLat))
	lngMin := lng - deltaLng
	lngMax := lng + deltaLng

	if lngMin < -180 {
		lngMin += 360
	}
	if lngMax > 180 {
		lngMax -= 360
	}

	return BBox{LatMin: latMin, LatMax: latMax, LngMin: lngMin, LngMax: lngMax}
}

// Distance 计算两点间的 Haversine 大圆距离，单位米
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dLng/2), 2)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(a))
}

// Haversine 距离的 SQL 表达式，针对 buildings 表的坐标列求值，
// 占位符依次为：地球半径、点纬度、点纬度、点经度。
// MySQL 与 SQLite（启用数学函数）均可直接求值，因此精确过滤在存储端完成。
const haversineSQL = "2 * ? * ASIN(SQRT(" +
	"POW(SIN((RADIANS(buildings.latitude) - RADIANS(?)) / 2), 2) + " +
	"COS(RADIANS(?)) * COS(RADIANS(buildings.latitude)) * " +
	"POW(SIN((RADIANS(buildings.longitude) - RADIANS(?)) / 2), 2)))"

// ApplyBBoxFilter 在查询上追加 bbox 预过滤条件。
// bbox 走 (latitude, longitude) 索引，是必要但不充分的过滤：
// 矩形四角可能落在圆外，需由精确距离条件剔除。
func ApplyBBoxFilter(query *gorm.DB, lat, lng, radiusMeters float64) *gorm.DB {
	b := ComputeBBox(lat, lng, radiusMeters)

	query = query.Where("buildings.latitude BETWEEN ? AND ?", b.LatMin, b.LatMax)

	if b.WrapsAntimeridian() {
		// 跨 ±180 经线：两段范围取 OR
		query = query.Where("(buildings.longitude >= ? OR buildings.longitude <= ?)", b.LngMin, b.LngMax)
	} else {
		query = query.Where("buildings.longitude BETWEEN ? AND ?", b.LngMin, b.LngMax)
	}

	return query
}

// ApplyRadiusFilter 在查询上追加完整的圆形搜索条件：bbox 预过滤 + Haversine 精确距离
func ApplyRadiusFilter(query *gorm.DB, lat, lng, radiusMeters float64) *gorm.DB {
	query = ApplyBBoxFilter(query, lat, lng, radiusMeters)
	return query.Where(haversineSQL+" <= ?", EarthRadiusMeters, lat, lat, lng, radiusMeters)
}

// ApplyRectangleFilter 在查询上追加矩形搜索条件，只做闭区间范围比较，不计算距离
func ApplyRectangleFilter(query *gorm.DB, latMin, latMax, lngMin, lngMax float64) *gorm.DB {
	return query.
		Where("buildings.latitude BETWEEN ? AND ?", latMin, latMax).
		Where("buildings.longitude BETWEEN ? AND ?", lngMin, lngMax)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
