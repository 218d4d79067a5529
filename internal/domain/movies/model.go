package movies

// Movie is one review row of the movie table. Optional columns are pointers so
// that NULL round-trips as JSON null instead of a zero value.
type Movie struct {
	ID          uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Detail      string   `gorm:"type:text;not null" json:"detail"`
	CoverImage  *string  `gorm:"column:coverimage;type:varchar(1024)" json:"coverimage"`
	Rating      *float64 `json:"rating"`
	ReleaseYear *int     `gorm:"column:release_year" json:"release_year"`
}

func (Movie) TableName() string {
	return "movie"
}

// NewMovie carries the insertable columns; the id is assigned by the database.
type NewMovie struct {
	Name        string
	Detail      string
	CoverImage  *string
	Rating      *float64
	ReleaseYear *int
}
