package model

type Account struct {
	Name    string
	Number  string
	Balance float64
}
