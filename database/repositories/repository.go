package repositories

import (
	"github.com/l3montree-dev/trackforge/database"
	"gorm.io/gorm"
)

func newGormRepository[ID comparable, T database.Tabler](db *gorm.DB) database.Repository[ID, T, *gorm.DB] {
	return database.NewGormRepository[ID, T](db)
}
