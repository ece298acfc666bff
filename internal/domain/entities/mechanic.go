package entities

type Mechanic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
