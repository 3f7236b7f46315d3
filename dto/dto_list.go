package dto

type ListPostsResp[T any] struct {
	Posts      []T     `json:"posts"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type ListCommentsResp[T any] struct {
	Comments   []T     `json:"comments"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
}
