package domain

// EntityType identifies the kind of domain entity.
type EntityType string

const (
	EntityTypeItem       EntityType = "ITEM"
	EntityTypeCollection EntityType = "COLLECTION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeItem, EntityTypeCollection:
		return true
	}
	return false
}

// Environment is the deployment environment the server runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTest        Environment = "test"
)

func (e Environment) String() string { return string(e) }

func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentProduction, EnvironmentTest:
		return true
	}
	return false
}

// IsDevelopment reports whether internal error details may be exposed to clients.
func (e Environment) IsDevelopment() bool {
	return e == EnvironmentDevelopment
}
