package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

// ReadOwned is the single ownership gate for project scoped operations:
// it only yields a project when it belongs to ownerID. An existing project
// owned by someone else is indistinguishable from a missing one.
func (g *projectRepository) ReadOwned(id uuid.UUID, ownerID string) (models.Project, error) {
	var project models.Project
	err := g.db.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error
	return project, err
}

func (g *projectRepository) GetByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := g.db.Where("user_id = ?", ownerID).Order("created_at asc").Find(&projects).Error
	return projects, err
}
