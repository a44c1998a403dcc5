package config

const (
	// DefaultDatabasePath is the default path for the sqlite database
	DefaultDatabasePath = "./bookclub.db"

	// DefaultBcryptCost is the bcrypt work factor used for new password hashes
	DefaultBcryptCost = 12
)
