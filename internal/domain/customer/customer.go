package customer

// Customer is the API-facing model. CustomerID is empty until the customer
// has been stored.
type Customer struct {
	CustomerID   string `json:"customerId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
}

func NewCustomer(customerID, firstName, lastName, emailAddress, phoneNumber, address string) *Customer {
	return &Customer{
		CustomerID:   customerID,
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: emailAddress,
		PhoneNumber:  phoneNumber,
		Address:      address,
	}
}
