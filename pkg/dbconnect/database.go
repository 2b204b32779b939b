package dbconnect

import "database/sql"

// ConnectionConfig отдаёт драйверу строку подключения.
type ConnectionConfig interface {
	GetConnectionString() string
}

// Database — источник соединения с базой журнала прогонов.
type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
}
