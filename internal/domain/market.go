package domain

// Fund is a venture fund as listed by CryptoRank's fund map.
type Fund struct {
	ID   int     `json:"id"`
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Tier *int    `json:"tier"`
	Type *string `json:"type"`
}
