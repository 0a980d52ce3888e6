package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"gorm.io/gorm"
)

type issueRepository struct {
	db *gorm.DB
	database.Repository[int, models.Issue, *gorm.DB]
}

func NewIssueRepository(db *gorm.DB) *issueRepository {
	return &issueRepository{
		db:         db,
		Repository: newGormRepository[int, models.Issue](db),
	}
}

func (g *issueRepository) GetByProjectID(projectID uuid.UUID) ([]models.Issue, error) {
	var issues []models.Issue
	err := g.db.Where("project_id = ?", projectID).Order("id asc").Find(&issues).Error
	return issues, err
}

// UpdatePriority touches nothing but the priority column. The rows affected
// count lets the caller distinguish a missing issue from a successful update.
func (g *issueRepository) UpdatePriority(id int, priority models.IssuePriority) (int64, error) {
	res := g.db.Model(&models.Issue{}).Where("id = ?", id).Update("priority", priority)
	return res.RowsAffected, res.Error
}

func (g *issueRepository) DeleteByID(id int) (int64, error) {
	res := g.db.Delete(&models.Issue{}, id)
	return res.RowsAffected, res.Error
}
