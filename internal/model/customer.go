package model

// Status specifies whether customer subscription is in use
type Status string

const (
	// StatusActive means customer subscription is active
	StatusActive Status = "active"
	// StatusInactive means customer subscription is suspended or finished
	StatusInactive Status = "inactive"
)

// DateLayout is the layout of customer period dates
const DateLayout = "2006-01-02"

// Valid reports whether status is one of the known values
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// CustomerFields holds every mutable customer attribute
type CustomerFields struct {
	Name        string  `json:"name" msgpack:"name"`
	Country     string  `json:"country" msgpack:"country"`
	Amount      float64 `json:"amount" msgpack:"amount"`
	Email       string  `json:"email" msgpack:"email"`
	PhoneNumber string  `json:"phoneNumber" msgpack:"phoneNumber"`
	PeriodStart string  `json:"periodStart" msgpack:"periodStart"`
	PeriodEnd   string  `json:"periodEnd" msgpack:"periodEnd"`
	Status      Status  `json:"status" msgpack:"status"`
}

// Customer is customer model entity
type Customer struct {
	ID             string `json:"id" msgpack:"id"`
	CustomerFields `msgpack:",inline"`
}

// NewCustomer builds customer with provided id and fields
func NewCustomer(id string, fields CustomerFields) *Customer {
	return &Customer{ID: id, CustomerFields: fields}
}

// Active reports whether customer status is active
func (c *Customer) Active() bool {
	return c.Status == StatusActive
}

// Clone returns detached copy of customer
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}

// CustomerStats is derived statistics over the whole customer collection
type CustomerStats struct {
	Count                int     `json:"count" msgpack:"count"`
	ActiveCount          int     `json:"activeCount" msgpack:"activeCount"`
	TotalAmount          float64 `json:"totalAmount" msgpack:"totalAmount"`
	DistinctCountryCount int     `json:"distinctCountryCount" msgpack:"distinctCountryCount"`
}
