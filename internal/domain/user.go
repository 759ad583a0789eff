package domain

// Sex is the registered sex of a user. Only SexMale and SexFemale are valid.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// MinAge is the smallest age that is not accepted; registered ages are strictly greater.
const MinAge = 9

// User is one registry record. The JSON field names are the persisted document format.
type User struct {
	FullName string `json:"nomeCompleto"`
	Username string `json:"usuario"`
	Sex      Sex    `json:"sexo"`
	Age      int    `json:"idade"`
}
