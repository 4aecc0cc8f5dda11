package response_models

import "github.com/google/uuid"

type TeamMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Bio      string    `json:"bio"`
	ImageURL string    `json:"image_url"`
}

type BlogPostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"image_url"`
	CreatedAt string    `json:"created_at"`
}

type HomeResponse struct {
	Classes  []GymClassResponse   `json:"classes"`
	Products []ProductResponse    `json:"products"`
	Team     []TeamMemberResponse `json:"team"`
	Plans    []SubscriptionPlan   `json:"plans"`
	Posts    []BlogPostResponse   `json:"posts"`
}

type PageResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func NewPage(items interface{}, total int64, page, pageSize int) PageResponse {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageResponse{Items: items, Total: total, Page: page, PageSize: pageSize, TotalPages: pages}
}
