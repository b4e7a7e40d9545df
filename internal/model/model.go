package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RequiredFields is the set of fields a purchase request must carry.
var RequiredFields = []string{"username", "item", "price"}

// Price decodes from either a JSON number or a numeric string, since shop
// frontends send both.
type Price struct {
	value float64
	set   bool
}

func NewPrice(v float64) Price {
	return Price{value: v, set: true}
}

func (p Price) Value() float64 {
	return p.value
}

func (p Price) IsSet() bool {
	return p.set
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return &ValidationError{Message: "Price must be a valid number"}
		}
		p.value = v
		p.set = true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return &ValidationError{Message: "Price must be a valid number"}
	}
	p.value = v
	p.set = true
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

type PurchaseRequest struct {
	Username string `json:"username"`
	Item     string `json:"item"`
	Price    Price  `json:"price"`
}

type ValidationError struct {
	Message        string
	RequiredFields []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate trims the text fields and checks the rules the purchase endpoint
// enforces: all required fields present and non-empty, price a non-negative
// number.
func (r *PurchaseRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Item = strings.TrimSpace(r.Item)

	var missing []string
	if r.Username == "" {
		missing = append(missing, "username")
	}
	if r.Item == "" {
		missing = append(missing, "item")
	}
	if !r.Price.IsSet() {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Message:        "Missing required fields: " + strings.Join(missing, ", "),
			RequiredFields: RequiredFields,
		}
	}

	if r.Price.Value() < 0 {
		return &ValidationError{Message: "Price cannot be negative"}
	}

	return nil
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PurchaseData struct {
	Username string  `json:"username"`
	Item     string  `json:"item"`
	Price    float64 `json:"price"`
}

type PurchaseResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    PurchaseData `json:"data"`
}

type ErrorResponse struct {
	Error          string   `json:"error"`
	Message        string   `json:"message,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
}
