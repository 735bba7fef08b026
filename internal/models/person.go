package models

// Actor and Director share a shape but live in separate tables, mirroring the
// separate cast/crew relation sets on Movie.

type Actor struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false" json:"id" example:"819"`
	Name        string `json:"name" example:"Edward Norton"`
	ProfilePath string `json:"profile_path" example:"/5XBzD5WuTyVQZeS4VI25z2moMeY.jpg"`
}

func (Actor) TableName() string {
	return "actors"
}

type Director struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false" json:"id" example:"7467"`
	Name        string `json:"name" example:"David Fincher"`
	ProfilePath string `json:"profile_path" example:"/tpEczFclQZeKAiCeKZZ0adRvtfz.jpg"`
}

func (Director) TableName() string {
	return "directors"
}
