package dto

// AccountRequest is the body of POST /register and POST /login
type AccountRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"min=4"`
}

// MessageRequest is the body of POST /messages
type MessageRequest struct {
	MessageText     string `json:"message_text" validate:"notblank,max=255"`
	PostedBy        int    `json:"posted_by"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// MessageUpdateRequest is the body of PATCH /messages/{message_id}. Other
// message fields in the body are ignored.
type MessageUpdateRequest struct {
	MessageText string `json:"message_text" validate:"notblank,max=255"`
}
