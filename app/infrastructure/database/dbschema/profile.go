package dbschema

import (
	"github.com/murayeeto/HornetHelper/app/domain/user"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Profile{})
}

type Profile struct {
	BaseModel
	SubjectID string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);index;not null"`
	Major     string `gorm:"type:varchar(255)"`
}

func NewSchemaProfile(p *user.Profile) *Profile {
	return &Profile{
		BaseModel: BaseModel{
			ID: p.ID,
		},
		SubjectID: p.SubjectID,
		Email:     p.Email,
		Major:     p.Major,
	}
}

func (p *Profile) EtoD() *user.Profile {
	return &user.Profile{
		ID:        p.ID,
		SubjectID: p.SubjectID,
		Email:     p.Email,
		Major:     p.Major,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
