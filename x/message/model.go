package message

type Entity struct{}

func (Entity) EntityName() string { return "message" }

type SendInput struct {
	ReceiverAccountID string `json:"receiverAccountId" validate:"required"`
	Content           string `json:"content" validate:"required,max=4096"`
}

// Channel is the redis channel an account receives realtime events on
func Channel(accountID string) string {
	return "message:" + accountID
}
