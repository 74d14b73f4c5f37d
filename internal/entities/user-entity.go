package entities

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime,omitempty"`
}
