package sqlcgen

type Category struct {
	ID   int32  `json:"id"`
	Type string `json:"type"`
}

type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}
