package command

type CreateCommentCommand struct {
	Actor        Actor  `json:"actor"`
	CampgroundId string `json:"campground_id"`
	Text         string `json:"text"`
}

type UpdateCommentCommand struct {
	Actor        Actor  `json:"actor"`
	CampgroundId string `json:"campground_id"`
	CommentId    string `json:"comment_id"`
	Text         string `json:"text"`
}

type DeleteCommentCommand struct {
	Actor        Actor  `json:"actor"`
	CampgroundId string `json:"campground_id"`
	CommentId    string `json:"comment_id"`
}
