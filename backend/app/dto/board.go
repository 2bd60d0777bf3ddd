package dto

// CreateBoardRequest has no owner field: the owner always comes from the token.
type CreateBoardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateBoardRequest is a partial patch; nil fields are left untouched.
type UpdateBoardRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
