package db_models

type TeamMember struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Position string `gorm:"size:100" json:"position"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type BlogPost struct {
	BaseModel
	Title    string `gorm:"size:200;not null" json:"title"`
	Author   string `gorm:"size:100" json:"author"`
	Content  string `gorm:"type:text" json:"content"`
	ImageURL string `json:"image_url"`
}

type Newsletter struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}

type ContactMessage struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Message   string `gorm:"type:text;not null" json:"message"`
	RepliedAt *int64 `json:"replied_at,omitempty"`
}
