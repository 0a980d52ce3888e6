package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"gorm.io/gorm"
)

type apiKeyRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.APIKey, *gorm.DB]
}

func NewAPIKeyRepository(db *gorm.DB) *apiKeyRepository {
	return &apiKeyRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.APIKey](db),
	}
}

func (g *apiKeyRepository) GetByProjectID(projectID uuid.UUID) ([]models.APIKey, error) {
	var keys []models.APIKey
	err := g.db.Where("project_id = ?", projectID).Order("created_at asc").Find(&keys).Error
	return keys, err
}

// ReadOwned joins through projects so that a key is only visible to the
// owner of its project.
func (g *apiKeyRepository) ReadOwned(id uuid.UUID, ownerID string) (models.APIKey, error) {
	var key models.APIKey
	err := g.db.Model(&models.APIKey{}).
		Select("api_keys.*").
		Joins("JOIN projects ON projects.id = api_keys.project_id").
		Where("api_keys.id = ? AND projects.user_id = ?", id, ownerID).
		First(&key).Error
	return key, err
}

func (g *apiKeyRepository) DeleteByProjectID(tx *gorm.DB, projectID uuid.UUID) error {
	return g.GetDB(tx).Where("project_id = ?", projectID).Delete(&models.APIKey{}).Error
}
