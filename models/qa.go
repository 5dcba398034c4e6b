package models

// QARecord is one answered question. It lives for a single response.
type QARecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}
