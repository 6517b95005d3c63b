package logos

import "repaired-site/internal/db"

// NewRepository returns the store that matches the connection's driver.
func NewRepository(conn *db.Conn) Repository {
	if conn == nil {
		return UnavailableRepository{}
	}
	switch conn.Driver {
	case db.DriverPostgres:
		return NewPostgresRepository(conn.Pool)
	case db.DriverMongo:
		return NewMongoRepository(conn.Cols)
	case db.DriverMemory:
		return NewMemoryRepository()
	default:
		return UnavailableRepository{}
	}
}
