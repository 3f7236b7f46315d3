package dto

type CreatePostReq struct {
	Title      string   `json:"title"   example:"My first post"`
	Desc       string   `json:"desc"    example:"A short summary"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	PreviewPix string   `json:"previewPix,omitempty" example:"https://cdn.example.com/preview.png"`
	DetailPix  string   `json:"detailPix,omitempty"`
	Published  bool     `json:"published,omitempty"`
}

type UpdatePostReq struct {
	Title      *string   `json:"title,omitempty"`
	Desc       *string   `json:"desc,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	PreviewPix *string   `json:"previewPix,omitempty"`
	DetailPix  *string   `json:"detailPix,omitempty"`
	Published  *bool     `json:"published,omitempty"`
}
