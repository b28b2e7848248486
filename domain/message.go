package domain

// Message is an immutable chat entry. The username is a snapshot taken
// at posting time, kept denormalized so the log stays readable no
// matter what happens to the account list afterwards.
type Message struct {
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Content  string `json:"content"`
}
