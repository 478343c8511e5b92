package entities

type Profile struct {
	ID          string
	DisplayName string
}
