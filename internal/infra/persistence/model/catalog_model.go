package model

import "time"

// MovieModel mirrors the 'movies' table.
type MovieModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"type:text"`
	Genre       string  `gorm:"type:varchar(100)"`
	Length      int     // running time in minutes
	ReleaseYear int     `gorm:"column:release_year"`
	Rating      float64 `gorm:"type:numeric(3,1)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}

// ActorModel mirrors the 'actors' table.
type ActorModel struct {
	ID          uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"type:varchar(100)"`
	LastName    string `gorm:"type:varchar(100)"`
	Gender      string `gorm:"type:varchar(20)"`
	Country     string `gorm:"type:varchar(100)"`
	DateOfBirth string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActorModel) TableName() string {
	return "actors"
}
