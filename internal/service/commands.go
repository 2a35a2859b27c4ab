package service

type CreateAccountCommand struct {
	Name string
	Age  int
}

type AmountCommand struct {
	AccountNumber string
	Amount        float64
}
