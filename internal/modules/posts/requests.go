package posts

// PostRequest addresses a single post.
type PostRequest struct {
	PostID string `param:"id" validate:"required,max=64"`
}

// ActionRequest selects one menu entry of a post.
type ActionRequest struct {
	PostID string `param:"id" validate:"required,max=64"`
	Action string `param:"action" validate:"required,max=64"`
}

// ConfirmRequest confirms the active tool. Note is only used by reports.
type ConfirmRequest struct {
	PostID string `param:"id" validate:"required,max=64"`
	Note   string `form:"note" validate:"max=500"`
}
