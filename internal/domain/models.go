package domain

import "time"

// Sender is the closed set of conversation roles. Anything that is not the
// customer is treated as the assistant at the transcript boundary.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID                string             `json:"id"`
	Text              string             `json:"text"`
	Sender            Sender             `json:"sender"`
	Timestamp         time.Time          `json:"timestamp"`
	SuggestedProducts []SuggestedProduct `json:"suggestedProducts,omitempty"`
}

// SuggestedProduct carries no price field: the assistant must never quote
// prices, customers are pointed at the shelf label instead.
type SuggestedProduct struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	IsSponsored bool   `json:"is_sponsored"`
	Reason      string `json:"reason"`
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price,omitempty"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
}

type CartItem struct {
	Product
	Quantity int  `json:"quantity"`
	Checked  bool `json:"checked"`
}

type Offer struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Discount string `json:"discount"`
	Desc     string `json:"desc"`
}

type SurveyResponse struct {
	ID         int64  `db:"id" json:"id"`
	Q1List     string `db:"q1_list" json:"q1_list"`
	Q2Offers   string `db:"q2_offers" json:"q2_offers"`
	Q3Scan     string `db:"q3_scan" json:"q3_scan"`
	Q4Kids     string `db:"q4_kids" json:"q4_kids"`
	Q5Feedback string `db:"q5_feedback" json:"q5_feedback"`
	CreatedAt  string `db:"created_at" json:"created_at"`
}
