package db

import (
	"database/sql"
)

// Database abstracts the lifecycle of the backing store. The concrete
// implementation lives in the sqlite subpackage.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
