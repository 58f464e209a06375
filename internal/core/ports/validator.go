package ports

// Validator decides whether a path is a genuine interpreter inside a genuine environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	IsValid(path string) bool
}
