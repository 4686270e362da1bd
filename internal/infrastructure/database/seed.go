package database

import (
	"log"

	"gorm.io/gorm"

	"directory-http-service/internal/domain/models"
)

// Seed 向数据库填充示例数据：楼宇、三级活动树、组织、电话及组织↔活动关联。
// 幂等：已存在楼宇数据时直接跳过。
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Building{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("数据库已有示例数据，跳过填充")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 楼宇
		buildings := []models.Building{
			{Address: "г. Москва, ул. Ленина 1, офис 3", Latitude: 55.7558, Longitude: 37.6173},
			{Address: "г. Москва, ул. Пушкина 5", Latitude: 55.7601, Longitude: 37.6186},
			{Address: "г. Москва, пр. Мира 10", Latitude: 55.7712, Longitude: 37.6316},
			{Address: "г. Новосибирск, ул. Блюхера 32/1", Latitude: 55.0084, Longitude: 82.9357},
			{Address: "г. Новосибирск, ул. Красный проспект 50", Latitude: 55.0302, Longitude: 82.9204},
			{Address: "г. Санкт-Петербург, Невский проспект 28", Latitude: 59.9343, Longitude: 30.3351},
			{Address: "г. Санкт-Петербург, ул. Рубинштейна 15", Latitude: 59.9298, Longitude: 30.3454},
		}
		if err := tx.Create(&buildings).Error; err != nil {
			return err
		}

		// 活动树：第1级
		food := models.Activity{Name: "Еда", Level: 1}
		cars := models.Activity{Name: "Автомобили", Level: 1}
		it := models.Activity{Name: "IT и Технологии", Level: 1}
		if err := tx.Create(&food).Error; err != nil {
			return err
		}
		if err := tx.Create(&cars).Error; err != nil {
			return err
		}
		if err := tx.Create(&it).Error; err != nil {
			return err
		}

		// 活动树：第2级
		meat := models.Activity{Name: "Мясная продукция", ParentID: &food.ID, Level: 2}
		dairy := models.Activity{Name: "Молочная продукция", ParentID: &food.ID, Level: 2}
		bakery := models.Activity{Name: "Выпечка", ParentID: &food.ID, Level: 2}
		trucks := models.Activity{Name: "Грузовые", ParentID: &cars.ID, Level: 2}
		passenger := models.Activity{Name: "Легковые", ParentID: &cars.ID, Level: 2}
		software := models.Activity{Name: "Разработка ПО", ParentID: &it.ID, Level: 2}
		for _, act := range []*models.Activity{&meat, &dairy, &bakery, &trucks, &passenger, &software} {
			if err := tx.Create(act).Error; err != nil {
				return err
			}
		}

		// 活动树：第3级
		parts := models.Activity{Name: "Запчасти", ParentID: &passenger.ID, Level: 3}
		accessories := models.Activity{Name: "Аксессуары", ParentID: &passenger.ID, Level: 3}
		webDev := models.Activity{Name: "Веб-разработка", ParentID: &software.ID, Level: 3}
		for _, act := range []*models.Activity{&parts, &accessories, &webDev} {
			if err := tx.Create(act).Error; err != nil {
				return err
			}
		}

		// 组织及其电话与活动关联
		orgs := []struct {
			name       string
			building   *models.Building
			phones     []string
			activities []models.Activity
		}{
			{`ООО "Рога и Копыта"`, &buildings[0], []string{"2-222-222", "3-333-333"}, []models.Activity{meat, dairy}},
			{`ООО "Молочный мир"`, &buildings[0], []string{"8-923-666-13-13"}, []models.Activity{dairy}},
			{`ООО "АвтоПлюс"`, &buildings[1], []string{"8-495-100-20-30", "8-495-100-20-31"}, []models.Activity{passenger, parts}},
			{`ООО "Мясной двор"`, &buildings[3], []string{"8-383-200-10-10"}, []models.Activity{meat}},
			{`ООО "Хлебный дом"`, &buildings[2], []string{"8-495-300-40-50"}, []models.Activity{bakery}},
			{`ООО "ГрузАвто"`, &buildings[3], []string{"8-383-400-50-60"}, []models.Activity{trucks}},
			{`ООО "Запчасти24"`, &buildings[4], []string{"8-383-500-60-70", "8-383-500-60-71"}, []models.Activity{parts, accessories}},
			{`ООО "ТехноСофт"`, &buildings[5], []string{"8-812-600-70-80"}, []models.Activity{software, webDev}},
			{`ООО "Молоко и Сливки"`, &buildings[1], []string{"8-495-700-80-90"}, []models.Activity{dairy}},
			{`ООО "Невский Гурман"`, &buildings[6], []string{"8-812-800-90-00"}, []models.Activity{meat, dairy, bakery}},
			{`ООО "СибАвто"`, &buildings[4], []string{"8-383-900-00-10"}, []models.Activity{passenger, accessories}},
		}

		for _, seed := range orgs {
			org := models.Organization{
				Name:       seed.name,
				BuildingID: seed.building.ID,
				Activities: seed.activities,
			}
			for _, number := range seed.phones {
				org.Phones = append(org.Phones, models.OrganizationPhone{PhoneNumber: number})
			}
			if err := tx.Create(&org).Error; err != nil {
				return err
			}
		}

		log.Println("示例数据填充完成")
		return nil
	})
}
