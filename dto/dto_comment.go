package dto

type CreateCommentReq struct {
	Text string `json:"text" example:"hello"`
}

type UpdateCommentReq struct {
	Text string `json:"text"`
}
